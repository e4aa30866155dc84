package capability

import (
	"reflect"

	"github.com/iocap/iocap/diag"
)

// completionArgs is the canonical completion signature: an error
// condition plus a transferred byte count.
var completionArgs = []reflect.Type{errorType, byteCountType}

// decay strips pointer indirection from a callable candidate, the
// analogue of examining the referenced value rather than the reference.
func decay(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// completionCallable verifies that t is copyable and invocable with the
// declared argument types, any return values discarded. Plain func kinds
// qualify directly; other types qualify through an Invoke method, the
// callable-object shape. Asynchronous machinery stores handlers by value,
// so a handler that must not be copied does not qualify even when its
// signature fits.
func completionCallable(contract string, t reflect.Type, args []reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	d := decay(t)
	if !copyable(d) {
		return diag.NotCopyable(contract, typeName(t))
	}

	rules := make([]paramRule, len(args))
	for i, a := range args {
		rules[i] = acceptsArg(a)
	}

	if d.Kind() == reflect.Func {
		return matchParams(contract, t, "call", funcSig(d), rules)
	}

	_, f = probeMethod(contract, d, "Invoke", rules...)
	if f != nil && f.Kind == diag.KindMissingMethod {
		return diag.New(contract, diag.KindNotInvocable).
			Candidate(typeName(t)).
			Detail("not a func and no Invoke method").
			Cause(f).
			Build()
	}
	return f
}

// funcSig adapts a func type to the probed-signature form.
func funcSig(ft reflect.Type) methodSig {
	sig := methodSig{variadic: ft.IsVariadic()}
	for i := 0; i < ft.NumIn(); i++ {
		sig.params = append(sig.params, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		sig.results = append(sig.results, ft.Out(i))
	}
	return sig
}

// CallableWith reports whether values of type t can be invoked with the
// given argument types, return values discarded. This is the
// signature-parameterized form of the CompletionHandler contract; t is
// also required to be copyable, as callables verified here are stored by
// value before use.
func CallableWith(t reflect.Type, args ...reflect.Type) bool {
	if t == nil {
		return false
	}
	return completionCallable("Callable", t, args) == nil
}
