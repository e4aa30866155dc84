package capability

import (
	"reflect"
	"sync"
)

var lockerType = reflect.TypeFor[sync.Locker]()

// copyable reports whether values of t may be freely duplicated. A type
// is not copyable when it, or any field reachable through structs and
// arrays, has Lock/Unlock in its pointer method set. This is the rule
// vet's copylocks check enforces, and the Go rendition of
// copy-constructibility: duplicating such a value by assignment would
// split the lock state.
func copyable(t reflect.Type) bool {
	return copyableSeen(t, map[reflect.Type]bool{})
}

func copyableSeen(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return true
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan,
		reflect.Map, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		// Copying these duplicates a header or handle, never lock state.
		return true
	}

	if reflect.PointerTo(t).Implements(lockerType) {
		return false
	}

	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !copyableSeen(t.Field(i).Type, seen) {
				return false
			}
		}
	case reflect.Array:
		return copyableSeen(t.Elem(), seen)
	}
	return true
}
