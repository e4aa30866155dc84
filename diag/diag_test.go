package diag

import (
	"errors"
	"strings"
	"testing"
)

func TestFailureMessage(t *testing.T) {
	f := New("SyncReadStream", KindResultIdentity).
		Candidate("mypkg.Conn").
		Method("ReadSome").
		Want("iocap.ByteCount").
		Got("int").
		Build()

	msg := f.Error()
	for _, part := range []string{
		"[SyncReadStream]",
		"result_identity",
		"mypkg.Conn",
		"ReadSome",
		"want iocap.ByteCount",
		"got int",
	} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q missing %q", msg, part)
		}
	}
}

func TestFailureCauseChain(t *testing.T) {
	inner := MissingMethod("ConstBufferSequence", "mypkg.Chain", "Begin")
	outer := New("GrowableBuffer", KindResultShape).
		Candidate("mypkg.Buf").
		Method("Data").
		Cause(inner).
		Build()

	if !strings.Contains(outer.Error(), "caused by") {
		t.Errorf("message should include the cause: %q", outer.Error())
	}
	if !errors.Is(outer, &Failure{Contract: "GrowableBuffer", Kind: KindResultShape}) {
		t.Error("Is should match on contract and kind")
	}
	if !errors.Is(outer, &Failure{Contract: "ConstBufferSequence", Kind: KindMissingMethod}) {
		t.Error("Is should match the nested cause through Unwrap")
	}

	var got *Failure
	if !errors.As(outer, &got) {
		t.Fatal("As should extract the failure")
	}
	if got.Method != "Data" {
		t.Errorf("Method = %q, want Data", got.Method)
	}
}

func TestFailureUnwrapNil(t *testing.T) {
	f := NotCopyable("CompletionHandler", "mypkg.cb")
	if f.Unwrap() != nil {
		t.Error("leaf failure should unwrap to nil")
	}
	if f.Kind != KindNotCopyable {
		t.Errorf("Kind = %s, want %s", f.Kind, KindNotCopyable)
	}
}

func TestWrongArity(t *testing.T) {
	f := WrongArity("SyncWriteStream", "mypkg.Conn", "WriteSome", 1, 3)
	msg := f.Error()
	if !strings.Contains(msg, "want 1") || !strings.Contains(msg, "got 3") {
		t.Errorf("arity counts missing from %q", msg)
	}
}

func TestDetailFormatting(t *testing.T) {
	f := New("Stream", KindParamShape).Detail("requires %s", "AsyncReadStream").Build()
	if !strings.Contains(f.Error(), "requires AsyncReadStream") {
		t.Errorf("formatted detail missing from %q", f.Error())
	}
	plain := New("Stream", KindParamShape).Detail("no args").Build()
	if !strings.Contains(plain.Error(), "no args") {
		t.Errorf("plain detail missing from %q", plain.Error())
	}
}
