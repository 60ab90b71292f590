package codec

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrInvalidBuffer reports a buffer too short or with an out-of-range root
// reference. This is the only malformation the parser guards against; buffers
// not produced by the matching builder are otherwise out of contract.
var ErrInvalidBuffer = errors.New("codec: invalid flat buffer")

// Parser reads a finished flat buffer. All positions are absolute byte
// indexes into the buffer; the parser performs no copying, and values read
// from it must not alias the buffer after decoding returns.
type Parser struct {
	buf  []byte
	root int
}

// Parse validates the fixed-position root reference and returns a parser.
func Parse(buf []byte) (*Parser, error) {
	if len(buf) < 5 {
		return nil, ErrInvalidBuffer
	}
	root := int(binary.LittleEndian.Uint32(buf))
	if root <= 0 || root >= len(buf) {
		return nil, ErrInvalidBuffer
	}
	return &Parser{buf: buf, root: root}, nil
}

// Root returns the absolute position of the root table.
func (p *Parser) Root() int { return p.root }

// Byte reads the byte at pos.
func (p *Parser) Byte(pos int) byte { return p.buf[pos] }

// Uint32 reads a little-endian u32 at pos.
func (p *Parser) Uint32(pos int) uint32 {
	return binary.LittleEndian.Uint32(p.buf[pos:])
}

// Int32 reads a little-endian i32 at pos.
func (p *Parser) Int32(pos int) int32 { return int32(p.Uint32(pos)) }

// Float64 reads a little-endian IEEE 754 double at pos.
func (p *Parser) Float64(pos int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p.buf[pos:]))
}

// Indirect resolves the offset field stored at pos. The second result is
// false when the field records absence.
func (p *Parser) Indirect(pos int) (int, bool) {
	rel := p.Uint32(pos)
	if rel == 0 {
		return 0, false
	}
	return pos + int(rel), true
}

// VectorLen reads the element count of the vector starting at pos.
func (p *Parser) VectorLen(pos int) int { return int(p.Uint32(pos)) }

// VectorElem returns the absolute position of element i in the vector
// starting at pos, given the element size in bytes.
func (p *Parser) VectorElem(pos, elemSize, i int) int {
	return pos + 4 + i*elemSize
}
