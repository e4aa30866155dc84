package iocap

// ExecutionContext owns the shared resources and scheduling state that a
// group of I/O objects is bound to. The capability layer treats it as
// opaque: stream types advertise their owning context through a
// Context() *ExecutionContext accessor, and the accessor contract demands
// exactly this pointer type so that a context is never silently
// substituted by something merely convertible.
//
// ExecutionContext must not be copied after first use; I/O objects hold
// it by pointer.
type ExecutionContext struct {
	noCopy noCopy
}

// noCopy triggers the vet copylocks check for embedding types.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
