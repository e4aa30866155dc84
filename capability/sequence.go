package capability

import (
	"reflect"

	"github.com/iocap/iocap"
	"github.com/iocap/iocap/diag"
)

var (
	constBufferType      = reflect.TypeFor[iocap.ConstBuffer]()
	mutableBufferType    = reflect.TypeFor[iocap.MutableBuffer]()
	byteCountType        = reflect.TypeFor[iocap.ByteCount]()
	errorType            = reflect.TypeFor[error]()
	executionContextType = reflect.TypeFor[*iocap.ExecutionContext]()
)

// regionKind selects which region descriptor a sequence must yield.
type regionKind int

const (
	regionConst regionKind = iota
	regionMutable
)

func (k regionKind) String() string {
	if k == regionMutable {
		return "iocap.MutableBuffer"
	}
	return "iocap.ConstBuffer"
}

// regionConvertible reports whether elements of type e can stand in for
// the given region kind. Mutable regions may always be read, so they
// satisfy the const kind as well; the reverse never holds.
func regionConvertible(e reflect.Type, kind regionKind) bool {
	if kind == regionMutable {
		return e.ConvertibleTo(mutableBufferType)
	}
	return e.ConvertibleTo(constBufferType) || e.ConvertibleTo(mutableBufferType)
}

// bufferSequence verifies the buffer-sequence contract: a copyable type
// whose Begin/End expose a forward iterator over region descriptors of
// the expected kind. Sequences of memory regions are the universal
// currency for I/O here, so generic code accepts anything sequence-shaped
// rather than one concrete container. Any failing sub-probe makes the
// whole check false.
func bufferSequence(contract string, t reflect.Type, kind regionKind) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	if !copyable(t) {
		return diag.NotCopyable(contract, typeName(t))
	}

	sigBegin, f := probeMethod(contract, t, "Begin")
	if f != nil {
		return f
	}
	iter, f := singleResult(contract, t, "Begin", sigBegin)
	if f != nil {
		return f
	}

	sigEnd, f := probeMethod(contract, t, "End")
	if f != nil {
		return f
	}
	end, f := singleResult(contract, t, "End", sigEnd)
	if f != nil {
		return f
	}
	if !end.ConvertibleTo(iter) {
		return diag.New(contract, diag.KindResultShape).
			Candidate(typeName(t)).
			Method("End").
			Want(iter.String()).
			Got(end.String()).
			Build()
	}

	if f := forwardIterator(contract, iter); f != nil {
		return f
	}

	sigBuf, f := probeMethod(contract, iter, "Buffer")
	if f != nil {
		return f
	}
	elem, f := singleResult(contract, iter, "Buffer", sigBuf)
	if f != nil {
		return f
	}
	if !regionConvertible(elem, kind) {
		return diag.New(contract, diag.KindResultShape).
			Candidate(typeName(t)).
			Method("Buffer").
			Want(kind.String()).
			Got(elem.String()).
			Build()
	}
	return nil
}

// forwardIterator verifies that it supports repeatable traversal: the
// iterator must be copyable and its Next must yield a fresh iterator of
// the same position type. A mutating, non-copyable cursor would make the
// sequence single-pass, which is not enough for scatter/gather code that
// walks a sequence more than once.
func forwardIterator(contract string, it reflect.Type) *diag.Failure {
	if !copyable(it) {
		return diag.New(contract, diag.KindNotTraversable).
			Candidate(typeName(it)).
			Detail("iterator is not copyable; traversal would be single-pass").
			Build()
	}

	sig, f := probeMethod(contract, it, "Next")
	if f != nil {
		return diag.New(contract, diag.KindNotTraversable).
			Candidate(typeName(it)).
			Cause(f).
			Build()
	}
	next, f := singleResult(contract, it, "Next", sig)
	if f != nil {
		return diag.New(contract, diag.KindNotTraversable).
			Candidate(typeName(it)).
			Cause(f).
			Build()
	}
	if !next.ConvertibleTo(it) {
		return diag.New(contract, diag.KindNotTraversable).
			Candidate(typeName(it)).
			Method("Next").
			Want(it.String()).
			Got(next.String()).
			Build()
	}
	return nil
}
