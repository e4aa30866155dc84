package capability

import (
	"testing"

	"github.com/iocap/iocap"
)

// stagebuf is a qualifying growable staging buffer.
type stagebuf struct{}

func (stagebuf) Prepare(n iocap.ByteCount) rwChain { return rwChain{} }
func (stagebuf) Data() roChain                     { return roChain{} }
func (stagebuf) Commit(n iocap.ByteCount)          {}
func (stagebuf) Consume(n iocap.ByteCount)         {}
func (stagebuf) Size() iocap.ByteCount             { return 0 }

// signedSize reports its size as a signed int.
type signedSize struct{}

func (signedSize) Prepare(n iocap.ByteCount) rwChain { return rwChain{} }
func (signedSize) Data() roChain                     { return roChain{} }
func (signedSize) Commit(n iocap.ByteCount)          {}
func (signedSize) Consume(n iocap.ByteCount)         {}
func (signedSize) Size() int                         { return 0 }

// constPrepare hands out read-only regions for writing.
type constPrepare struct{}

func (constPrepare) Prepare(n iocap.ByteCount) roChain { return roChain{} }
func (constPrepare) Data() roChain                     { return roChain{} }
func (constPrepare) Commit(n iocap.ByteCount)          {}
func (constPrepare) Consume(n iocap.ByteCount)         {}
func (constPrepare) Size() iocap.ByteCount             { return 0 }

// noConsume lacks the read-side release operation.
type noConsume struct{}

func (noConsume) Prepare(n iocap.ByteCount) rwChain { return rwChain{} }
func (noConsume) Data() roChain                     { return roChain{} }
func (noConsume) Commit(n iocap.ByteCount)          {}
func (noConsume) Size() iocap.ByteCount             { return 0 }

// loudCommit returns values from Commit and Consume; their results are
// advisory and unconstrained.
type loudCommit struct{}

func (loudCommit) Prepare(n iocap.ByteCount) rwChain      { return rwChain{} }
func (loudCommit) Data() roChain                          { return roChain{} }
func (loudCommit) Commit(n iocap.ByteCount) error         { return nil }
func (loudCommit) Consume(n iocap.ByteCount) (int, error) { return 0, nil }
func (loudCommit) Size() iocap.ByteCount                  { return 0 }

func TestGrowableBuffer(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"qualifying buffer", IsGrowableBuffer[stagebuf](), true},
		{"commit results unconstrained", IsGrowableBuffer[loudCommit](), true},
		{"signed size", IsGrowableBuffer[signedSize](), false},
		{"prepare yields const regions", IsGrowableBuffer[constPrepare](), false},
		{"missing consume", IsGrowableBuffer[noConsume](), false},
		{"scalar", IsGrowableBuffer[uint64](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
