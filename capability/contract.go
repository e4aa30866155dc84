package capability

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/iocap/iocap/diag"
)

// Contract names a fixed capability requirement defined by the library.
// The set of contracts is closed: candidate types never register
// anything, they either have the shape or they do not.
type Contract string

const (
	// ConstBufferSequence is a copyable, forward-traversable sequence of
	// read-only memory regions.
	ConstBufferSequence Contract = "ConstBufferSequence"
	// MutableBufferSequence is the writable-region counterpart.
	MutableBufferSequence Contract = "MutableBufferSequence"
	// ExecutionContextAccessor exposes the owning execution context.
	ExecutionContextAccessor Contract = "ExecutionContextAccessor"
	// AsyncReadStream starts reads that complete through a callable.
	AsyncReadStream Contract = "AsyncReadStream"
	// AsyncWriteStream starts writes that complete through a callable.
	AsyncWriteStream Contract = "AsyncWriteStream"
	// SyncReadStream reads synchronously, reporting count and error.
	SyncReadStream Contract = "SyncReadStream"
	// SyncWriteStream writes synchronously, reporting count and error.
	SyncWriteStream Contract = "SyncWriteStream"
	// Stream is the conjunction of all four stream contracts.
	Stream Contract = "Stream"
	// GrowableBuffer is an appendable/consumable byte staging buffer.
	GrowableBuffer Contract = "GrowableBuffer"
	// CompletionHandler is a copyable callable taking (error, ByteCount).
	CompletionHandler Contract = "CompletionHandler"
)

// streamParts are the contracts Stream is the conjunction of.
var streamParts = [...]Contract{
	AsyncReadStream,
	AsyncWriteStream,
	SyncReadStream,
	SyncWriteStream,
}

type cacheKey struct {
	t reflect.Type
	c Contract
}

var cache sync.Map // cacheKey -> bool

// Satisfies reports whether candidate type t structurally satisfies
// contract c. The answer is a pure function of the pair and is memoized:
// repeated and concurrent queries are cheap and need no synchronization
// beyond the cache's own. Satisfies never panics, whatever shape t has.
func Satisfies(t reflect.Type, c Contract) bool {
	if t == nil {
		return false
	}
	key := cacheKey{t: t, c: c}
	if v, ok := cache.Load(key); ok {
		return v.(bool)
	}

	f := verify(t, c)
	ok := f == nil
	if !ok {
		Logger().Debug("contract not satisfied",
			zap.String("contract", string(c)),
			zap.String("candidate", typeName(t)),
			zap.String("reason", f.Error()))
	}
	cache.Store(key, ok)
	return ok
}

// Explain returns nil when t satisfies c, otherwise the first failing
// sub-probe. Unlike Satisfies it is not cached; diagnosis is the slow
// path taken once, on the way to an error message.
func Explain(t reflect.Type, c Contract) *diag.Failure {
	if t == nil {
		return diag.New(string(c), diag.KindMissingMethod).
			Candidate("<nil>").
			Detail("nil candidate type").
			Build()
	}
	return verify(t, c)
}

func verify(t reflect.Type, c Contract) *diag.Failure {
	name := string(c)
	switch c {
	case ConstBufferSequence:
		return bufferSequence(name, t, regionConst)
	case MutableBufferSequence:
		return bufferSequence(name, t, regionMutable)
	case ExecutionContextAccessor:
		return executionContextAccessor(name, t)
	case AsyncReadStream:
		return asyncReadStream(name, t)
	case AsyncWriteStream:
		return asyncWriteStream(name, t)
	case SyncReadStream:
		return syncReadStream(name, t)
	case SyncWriteStream:
		return syncWriteStream(name, t)
	case Stream:
		for _, part := range streamParts {
			if f := verify(t, part); f != nil {
				return diag.New(name, f.Kind).
					Candidate(typeName(t)).
					Detail("requires %s", part).
					Cause(f).
					Build()
			}
		}
		return nil
	case GrowableBuffer:
		return growableBuffer(name, t)
	case CompletionHandler:
		return completionCallable(name, t, completionArgs)
	default:
		return diag.New(name, diag.KindMissingMethod).
			Candidate(typeName(t)).
			Detail("unknown contract").
			Build()
	}
}

// Is reports whether T satisfies contract c.
func Is[T any](c Contract) bool {
	return Satisfies(reflect.TypeFor[T](), c)
}

// IsConstBufferSequence reports whether T is a read-only buffer sequence.
func IsConstBufferSequence[T any]() bool { return Is[T](ConstBufferSequence) }

// IsMutableBufferSequence reports whether T is a writable buffer sequence.
func IsMutableBufferSequence[T any]() bool { return Is[T](MutableBufferSequence) }

// HasExecutionContext reports whether T exposes its owning execution
// context.
func HasExecutionContext[T any]() bool { return Is[T](ExecutionContextAccessor) }

// IsAsyncReadStream reports whether T supports asynchronous reads.
func IsAsyncReadStream[T any]() bool { return Is[T](AsyncReadStream) }

// IsAsyncWriteStream reports whether T supports asynchronous writes.
func IsAsyncWriteStream[T any]() bool { return Is[T](AsyncWriteStream) }

// IsSyncReadStream reports whether T supports synchronous reads.
func IsSyncReadStream[T any]() bool { return Is[T](SyncReadStream) }

// IsSyncWriteStream reports whether T supports synchronous writes.
func IsSyncWriteStream[T any]() bool { return Is[T](SyncWriteStream) }

// IsStream reports whether T satisfies all four stream contracts.
func IsStream[T any]() bool { return Is[T](Stream) }

// IsGrowableBuffer reports whether T is a growable staging buffer.
func IsGrowableBuffer[T any]() bool { return Is[T](GrowableBuffer) }

// IsCompletionHandler reports whether T is a copyable callable invocable
// with (error, iocap.ByteCount).
func IsCompletionHandler[T any]() bool { return Is[T](CompletionHandler) }

// Assert panics when T does not satisfy c, with a message naming the
// unmet capability. Generic adaptor code calls it at construction time so
// that an unsuitable type surfaces as one readable failure instead of an
// obscure error deep inside the adaptor.
func Assert[T any](c Contract) {
	t := reflect.TypeFor[T]()
	if Satisfies(t, c) {
		return
	}
	panic(Explain(t, c))
}
