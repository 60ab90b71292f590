package codec

import (
	"encoding/binary"
	"math"
)

// Offset identifies a block previously placed in the buffer, measured as the
// distance from the end of the buffer to the block's first byte. The zero
// Offset is reserved as the absence sentinel: no placed block can ever sit at
// distance zero from the end.
type Offset int

// Builder assembles a flat buffer back to front. Content grows toward the
// front of the underlying slice; positions are tracked from the end so that
// already-written blocks keep their Offset values when the buffer grows.
type Builder struct {
	buf  []byte
	head int // index of the first used byte; buf[head:] holds the content
}

// NewBuilder returns a builder with the given initial capacity hint.
func NewBuilder(capacity int) *Builder {
	if capacity < 32 {
		capacity = 32
	}
	return &Builder{buf: make([]byte, capacity), head: capacity}
}

func (b *Builder) used() int { return len(b.buf) - b.head }

// grow makes room for n more bytes at the front, reallocating if needed.
// Existing content is moved to the end of the new slice, which preserves all
// end-relative offsets.
func (b *Builder) grow(n int) {
	if b.head >= n {
		return
	}
	size := len(b.buf)
	for size-b.used() < n {
		size *= 2
	}
	next := make([]byte, size)
	copy(next[size-b.used():], b.buf[b.head:])
	b.head = size - b.used()
	b.buf = next
}

func (b *Builder) prepend(n int) []byte {
	b.grow(n)
	b.head -= n
	return b.buf[b.head : b.head+n]
}

// Mark returns the offset of the most recently prepended block.
func (b *Builder) Mark() Offset { return Offset(b.used()) }

// PrependByte writes a single byte.
func (b *Builder) PrependByte(v byte) { b.prepend(1)[0] = v }

// PrependUint32 writes a little-endian u32.
func (b *Builder) PrependUint32(v uint32) {
	binary.LittleEndian.PutUint32(b.prepend(4), v)
}

// PrependInt32 writes a little-endian i32.
func (b *Builder) PrependInt32(v int32) { b.PrependUint32(uint32(v)) }

// PrependFloat64 writes a little-endian IEEE 754 double.
func (b *Builder) PrependFloat64(v float64) {
	binary.LittleEndian.PutUint64(b.prepend(8), math.Float64bits(v))
}

// EndVector closes a vector whose count elements were already prepended in
// reverse iteration order. It writes the length prefix and returns the
// vector's offset.
func (b *Builder) EndVector(count int) Offset {
	b.PrependUint32(uint32(count))
	return b.Mark()
}

// PrependOffsetField writes a u32 field referencing target as a self-relative
// forward distance. A zero target records absence.
func (b *Builder) PrependOffsetField(target Offset) {
	if target == 0 {
		b.PrependUint32(0)
		return
	}
	slot := b.prepend(4)
	// Field start is now at distance used() from the end; the stored value is
	// the absolute distance from the field to the target it references.
	binary.LittleEndian.PutUint32(slot, uint32(b.used()-int(target)))
}

// Finish records the root table reference at the buffer's fixed finishing
// position (byte 0) and returns the completed buffer. The builder must not be
// reused afterwards.
func (b *Builder) Finish(root Offset) []byte {
	slot := b.prepend(4)
	binary.LittleEndian.PutUint32(slot, uint32(b.used()-int(root)))
	return b.buf[b.head:]
}
