package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	b := NewBuilder(32)
	// Elements prepended in reverse iteration order so the finished buffer
	// holds them front to back.
	for _, v := range []int32{3, 2, 1} {
		b.PrependInt32(v)
	}
	vec := b.EndVector(3)
	b.PrependOffsetField(vec)
	b.PrependByte(0x7a)
	buf := b.Finish(b.Mark())

	p, err := Parse(buf)
	require.NoError(t, err)
	root := p.Root()
	assert.Equal(t, byte(0x7a), p.Byte(root))

	pos, ok := p.Indirect(root + 1)
	require.True(t, ok)
	require.Equal(t, 3, p.VectorLen(pos))
	for i, want := range []int32{1, 2, 3} {
		assert.Equal(t, want, p.Int32(p.VectorElem(pos, 4, i)))
	}
}

func TestAbsentField(t *testing.T) {
	b := NewBuilder(16)
	b.PrependOffsetField(0)
	b.PrependByte(1)
	buf := b.Finish(b.Mark())

	p, err := Parse(buf)
	require.NoError(t, err)
	_, ok := p.Indirect(p.Root() + 1)
	assert.False(t, ok)
}

func TestEmptyVectorDistinctFromAbsent(t *testing.T) {
	b := NewBuilder(16)
	vec := b.EndVector(0)
	b.PrependOffsetField(vec)
	b.PrependByte(1)
	buf := b.Finish(b.Mark())

	p, err := Parse(buf)
	require.NoError(t, err)
	pos, ok := p.Indirect(p.Root() + 1)
	require.True(t, ok)
	assert.Equal(t, 0, p.VectorLen(pos))
}

func TestBuilderGrowthPreservesOffsets(t *testing.T) {
	// Force repeated reallocation with a deliberately tiny initial capacity.
	b := NewBuilder(1)
	n := 1000
	for i := n - 1; i >= 0; i-- {
		b.PrependFloat64(float64(i) * 0.5)
	}
	vec := b.EndVector(n)
	b.PrependOffsetField(vec)
	b.PrependByte(9)
	buf := b.Finish(b.Mark())

	p, err := Parse(buf)
	require.NoError(t, err)
	pos, ok := p.Indirect(p.Root() + 1)
	require.True(t, ok)
	require.Equal(t, n, p.VectorLen(pos))
	for i := 0; i < n; i++ {
		assert.Equal(t, float64(i)*0.5, p.Float64(p.VectorElem(pos, 8, i)))
	}
}

func TestMultipleVectorsResolveIndependently(t *testing.T) {
	b := NewBuilder(32)
	for _, v := range []int32{20, 10} {
		b.PrependInt32(v)
	}
	second := b.EndVector(2)
	b.PrependFloat64(2.5)
	b.PrependFloat64(1.5)
	first := b.EndVector(2)

	b.PrependOffsetField(second)
	b.PrependOffsetField(first)
	b.PrependByte(3)
	buf := b.Finish(b.Mark())

	p, err := Parse(buf)
	require.NoError(t, err)
	root := p.Root()

	fpos, ok := p.Indirect(root + 1)
	require.True(t, ok)
	assert.Equal(t, 1.5, p.Float64(p.VectorElem(fpos, 8, 0)))
	assert.Equal(t, 2.5, p.Float64(p.VectorElem(fpos, 8, 1)))

	spos, ok := p.Indirect(root + 5)
	require.True(t, ok)
	assert.Equal(t, int32(10), p.Int32(p.VectorElem(spos, 4, 0)))
	assert.Equal(t, int32(20), p.Int32(p.VectorElem(spos, 4, 1)))
}

func TestParseRejectsMalformedRoots(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = Parse([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	// Root reference outside the buffer.
	_, err = Parse([]byte{0xff, 0xff, 0xff, 0xff, 0x00})
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	// Root reference of zero.
	_, err = Parse([]byte{0x00, 0x00, 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}
