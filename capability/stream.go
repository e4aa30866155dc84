package capability

import (
	"reflect"

	"github.com/iocap/iocap/diag"
)

// executionContextAccessor verifies that t exposes a niladic Context
// method returning exactly *iocap.ExecutionContext. Identity, not
// convertibility: the accessor selects ownership and threading context
// and must never be silently substituted.
func executionContextAccessor(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	sig, f := probeMethod(contract, t, "Context")
	if f != nil {
		return f
	}
	res, f := singleResult(contract, t, "Context", sig)
	if f != nil {
		return f
	}
	if res != executionContextType {
		return diag.New(contract, diag.KindResultIdentity).
			Candidate(typeName(t)).
			Method("Context").
			Want(executionContextType.String()).
			Got(res.String()).
			Build()
	}
	return nil
}

// acceptsSequence accepts parameters that can receive a buffer sequence
// of the given kind: either the parameter type is itself sequence-shaped,
// or it is an interface the canonical model sequence implements.
func acceptsSequence(contract string, kind regionKind) paramRule {
	want := "const buffer sequence"
	model := modelConstSequenceType
	if kind == regionMutable {
		want = "mutable buffer sequence"
		model = modelMutableSequenceType
	}
	return paramRule{
		want: want,
		accepts: func(p reflect.Type) bool {
			if p.Kind() == reflect.Interface {
				return model.Implements(p)
			}
			return bufferSequence(contract, p, kind) == nil
		},
	}
}

// acceptsHandler accepts parameters that can receive a completion
// callable: a handler-shaped type, or an interface the canonical model
// handler implements.
func acceptsHandler(contract string) paramRule {
	return paramRule{
		want: "completion handler",
		accepts: func(p reflect.Type) bool {
			if p.Kind() == reflect.Interface {
				return modelHandlerType.Implements(p)
			}
			return completionCallable(contract, p, completionArgs) == nil
		},
	}
}

// asyncReadStream verifies the asynchronous read contract: an owning
// execution context plus AsyncReadSome(buffers, handler). Return types
// are deliberately unconstrained; async operation shapes vary in what
// they hand back, and only argument compatibility is load-bearing.
func asyncReadStream(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	if f := executionContextAccessor(contract, t); f != nil {
		return f
	}
	_, f = probeMethod(contract, t, "AsyncReadSome",
		acceptsSequence(contract, regionMutable),
		acceptsHandler(contract))
	return f
}

// asyncWriteStream is the write-side mirror of asyncReadStream, gathering
// from read-only regions.
func asyncWriteStream(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	if f := executionContextAccessor(contract, t); f != nil {
		return f
	}
	_, f = probeMethod(contract, t, "AsyncWriteSome",
		acceptsSequence(contract, regionConst),
		acceptsHandler(contract))
	return f
}

// syncReadStream verifies the synchronous read contract:
// ReadSome(buffers) returning exactly (iocap.ByteCount, error). Both
// results must be present; a shape reporting only the count has no
// non-throwing path to offer generic code.
func syncReadStream(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	sig, f := probeMethod(contract, t, "ReadSome",
		acceptsSequence(contract, regionMutable))
	if f != nil {
		return f
	}
	return exactResults(contract, t, "ReadSome", sig, byteCountType, errorType)
}

// syncWriteStream is the write-side mirror of syncReadStream.
func syncWriteStream(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	sig, f := probeMethod(contract, t, "WriteSome",
		acceptsSequence(contract, regionConst))
	if f != nil {
		return f
	}
	return exactResults(contract, t, "WriteSome", sig, byteCountType, errorType)
}
