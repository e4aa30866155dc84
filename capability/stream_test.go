package capability

import (
	"testing"

	"github.com/iocap/iocap"
)

// pipe satisfies all four stream contracts.
type pipe struct {
	ctx *iocap.ExecutionContext
}

func (p pipe) Context() *iocap.ExecutionContext { return p.ctx }

func (p pipe) AsyncReadSome(bufs rwChain, fn func(error, iocap.ByteCount))  {}
func (p pipe) AsyncWriteSome(bufs roChain, fn func(error, iocap.ByteCount)) {}

func (p pipe) ReadSome(bufs rwChain) (iocap.ByteCount, error)  { return 0, nil }
func (p pipe) WriteSome(bufs roChain) (iocap.ByteCount, error) { return 0, nil }

// anyPipe declares its async parameters as interfaces; the canonical
// models implement any, so the shapes are callable.
type anyPipe struct{}

func (anyPipe) Context() *iocap.ExecutionContext           { return nil }
func (anyPipe) AsyncReadSome(bufs any, fn any)             {}
func (anyPipe) AsyncWriteSome(bufs any, fn any)            {}
func (anyPipe) ReadSome(bufs any) (iocap.ByteCount, error) { return 0, nil }

// noContext reads asynchronously but does not expose its owner.
type noContext struct{}

func (noContext) AsyncReadSome(bufs rwChain, fn func(error, iocap.ByteCount)) {}

// looseContext exposes an accessor whose result could hold the context
// but is not exactly *iocap.ExecutionContext. Exact identity is required:
// the accessor selects ownership and must not be satisfied by an
// assignable stand-in.
type looseContext struct{}

func (looseContext) Context() any                                                { return nil }
func (looseContext) AsyncReadSome(bufs rwChain, fn func(error, iocap.ByteCount)) {}

// readHalf offers only the synchronous read side.
type readHalf struct{}

func (readHalf) ReadSome(bufs rwChain) (iocap.ByteCount, error) { return 0, nil }

// countOnly reports a count without an error condition.
type countOnly struct{}

func (countOnly) ReadSome(bufs rwChain) iocap.ByteCount { return 0 }

// intCount reports the count as a plain int.
type intCount struct{}

func (intCount) ReadSome(bufs rwChain) (int, error) { return 0, nil }

// hostileRead shares the method name with a wildly different signature.
// It must yield false, never a hard failure.
type hostileRead struct{}

func (hostileRead) ReadSome(a string, b ...map[string]chan int) string { return "" }

func TestAsyncReadStream(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"concrete parameters", IsAsyncReadStream[pipe](), true},
		{"interface parameters", IsAsyncReadStream[anyPipe](), true},
		{"missing accessor", IsAsyncReadStream[noContext](), false},
		{"loose context accessor", IsAsyncReadStream[looseContext](), false},
		{"scalar", IsAsyncReadStream[int](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestSyncReadStream(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"count and error", IsSyncReadStream[pipe](), true},
		{"read half only", IsSyncReadStream[readHalf](), true},
		{"count without error", IsSyncReadStream[countOnly](), false},
		{"int count", IsSyncReadStream[intCount](), false},
		{"hostile signature", IsSyncReadStream[hostileRead](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestExecutionContextAccessor(t *testing.T) {
	if !HasExecutionContext[pipe]() {
		t.Error("pipe should expose its execution context")
	}
	if HasExecutionContext[looseContext]() {
		t.Error("an accessor not returning exactly *iocap.ExecutionContext must not qualify")
	}
	if HasExecutionContext[readHalf]() {
		t.Error("readHalf has no accessor")
	}
}

func TestStreamComposite(t *testing.T) {
	if !IsStream[pipe]() {
		t.Fatal("pipe should satisfy Stream")
	}

	// The composite is exactly the conjunction of the four parts.
	parts := IsAsyncReadStream[pipe]() &&
		IsAsyncWriteStream[pipe]() &&
		IsSyncReadStream[pipe]() &&
		IsSyncWriteStream[pipe]()
	if IsStream[pipe]() != parts {
		t.Error("Stream must equal the conjunction of its four parts")
	}

	// Dropping any single part flips the composite.
	if IsStream[readHalf]() {
		t.Error("readHalf lacks three parts and must not satisfy Stream")
	}
	if IsStream[anyPipe]() {
		t.Error("anyPipe lacks WriteSome and must not satisfy Stream")
	}
}
