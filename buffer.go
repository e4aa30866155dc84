package iocap

// ByteCount is the unsigned byte-count type used throughout the library.
// Transfer sizes, buffer sizes and completion counts are all expressed in
// ByteCount; capability contracts that require "the byte-count type" mean
// this exact type, not any unsigned integer.
type ByteCount uint64

// ConstBuffer describes a read-only region of memory. It carries no
// ownership: the region it points at must outlive the descriptor.
type ConstBuffer struct {
	data []byte
}

// NewConstBuffer returns a descriptor for b. The bytes are not copied.
func NewConstBuffer(b []byte) ConstBuffer {
	return ConstBuffer{data: b}
}

// Bytes returns the described region. Callers must not write through it.
func (b ConstBuffer) Bytes() []byte { return b.data }

// Size returns the length of the described region.
func (b ConstBuffer) Size() ByteCount { return ByteCount(len(b.data)) }

// MutableBuffer describes a writable region of memory. Like ConstBuffer it
// carries no ownership.
type MutableBuffer struct {
	bytes []byte
}

// NewMutableBuffer returns a descriptor for b. The bytes are not copied.
func NewMutableBuffer(b []byte) MutableBuffer {
	return MutableBuffer{bytes: b}
}

// Bytes returns the described region.
func (b MutableBuffer) Bytes() []byte { return b.bytes }

// Size returns the length of the described region.
func (b MutableBuffer) Size() ByteCount { return ByteCount(len(b.bytes)) }

// AsConst reinterprets the region as read-only. This is the only sanctioned
// direction: a writable region may always be read, never the reverse. The
// capability checks encode the same rule when matching sequence elements.
func (b MutableBuffer) AsConst() ConstBuffer {
	return ConstBuffer{data: b.bytes}
}
