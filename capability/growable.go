package capability

import (
	"reflect"

	"github.com/iocap/iocap/diag"
)

// acceptsByteCount accepts parameters a call site could pass an
// iocap.ByteCount to.
func acceptsByteCount() paramRule {
	return acceptsArg(byteCountType)
}

// growableBuffer verifies the growable staging-buffer contract:
// Prepare/Commit govern the write side, Data/Consume the read side, and
// Size reports the readable length. Result strictness is deliberately
// uneven: Prepare and Data results feed directly into the sequence
// checks, Size must be the exact byte-count type, while Commit and
// Consume only need to be callable.
func growableBuffer(contract string, t reflect.Type) (f *diag.Failure) {
	defer absorb(contract, t, &f)

	sigPrepare, f := probeMethod(contract, t, "Prepare", acceptsByteCount())
	if f != nil {
		return f
	}
	prep, f := singleResult(contract, t, "Prepare", sigPrepare)
	if f != nil {
		return f
	}
	if cause := bufferSequence(contract, prep, regionMutable); cause != nil {
		return diag.New(contract, diag.KindResultShape).
			Candidate(typeName(t)).
			Method("Prepare").
			Want("mutable buffer sequence").
			Got(prep.String()).
			Cause(cause).
			Build()
	}

	sigData, f := probeMethod(contract, t, "Data")
	if f != nil {
		return f
	}
	data, f := singleResult(contract, t, "Data", sigData)
	if f != nil {
		return f
	}
	if cause := bufferSequence(contract, data, regionConst); cause != nil {
		return diag.New(contract, diag.KindResultShape).
			Candidate(typeName(t)).
			Method("Data").
			Want("const buffer sequence").
			Got(data.String()).
			Cause(cause).
			Build()
	}

	// Commit and Consume are advisory: well-formed calls are all that is
	// required, whatever they return.
	if _, f := probeMethod(contract, t, "Commit", acceptsByteCount()); f != nil {
		return f
	}
	if _, f := probeMethod(contract, t, "Consume", acceptsByteCount()); f != nil {
		return f
	}

	sigSize, f := probeMethod(contract, t, "Size")
	if f != nil {
		return f
	}
	return exactResults(contract, t, "Size", sigSize, byteCountType)
}
