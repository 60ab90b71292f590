package geocore

import "github.com/meshkit/geocore-go/pkg/geocore/internal/codec"

// The encoders below all follow the same discipline: element vectors are
// written first, back to front, then the root table that references them,
// then the root offset at position 0. A nil sequence is recorded as an
// absent field; a non-nil empty sequence is recorded as a zero-length
// vector. The two decode differently (nil vs empty) and both round-trip.

func prependPoints(b *codec.Builder, pts []Point3) codec.Offset {
	if pts == nil {
		return 0
	}
	for i := len(pts) - 1; i >= 0; i-- {
		b.PrependFloat64(pts[i].Z)
		b.PrependFloat64(pts[i].Y)
		b.PrependFloat64(pts[i].X)
	}
	return b.EndVector(len(pts))
}

func prependInts(b *codec.Builder, v []int32) codec.Offset {
	if v == nil {
		return 0
	}
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependInt32(v[i])
	}
	return b.EndVector(len(v))
}

func prependReals(b *codec.Builder, v []float64) codec.Offset {
	if v == nil {
		return 0
	}
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependFloat64(v[i])
	}
	return b.EndVector(len(v))
}

// EncodePoint3 encodes a single point. The origin is stored as an absent
// field, matching the optional-point semantic of the wire form: absence
// decodes back to the zero point.
func EncodePoint3(p Point3) []byte {
	b := codec.NewBuilder(64)
	var off codec.Offset
	if !p.IsZero() {
		b.PrependFloat64(p.Z)
		b.PrependFloat64(p.Y)
		b.PrependFloat64(p.X)
		off = b.Mark()
	}
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindPoint3))
	return b.Finish(b.Mark())
}

// EncodePoint3List encodes an ordered point sequence.
func EncodePoint3List(pts []Point3) []byte {
	b := codec.NewBuilder(64 + 24*len(pts))
	off := prependPoints(b, pts)
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindPoint3List))
	return b.Finish(b.Mark())
}

// EncodeMesh encodes a mesh. The wire form carries one face kind only: a
// mesh whose faces are purely quads keeps its quads, anything containing a
// triangle is encoded as triangles and any quads present are silently
// dropped. Set triangulate to split quads into triangles on a private copy
// first; the caller's mesh is never mutated.
func EncodeMesh(m *Mesh, triangulate bool) []byte {
	if triangulate {
		m = m.Triangulated()
	}
	b := codec.NewBuilder(128 + 24*len(m.Vertices) + 16*(len(m.Triangles)+len(m.Quads)))

	// Vectors in reverse field order: quads, triangles, vertices.
	var triOff, quadOff codec.Offset
	if m.HasQuads() && !m.HasTriangles() {
		for i := len(m.Quads) - 1; i >= 0; i-- {
			q := m.Quads[i]
			b.PrependInt32(q[3])
			b.PrependInt32(q[2])
			b.PrependInt32(q[1])
			b.PrependInt32(q[0])
		}
		quadOff = b.EndVector(len(m.Quads))
	} else if m.Triangles != nil {
		for i := len(m.Triangles) - 1; i >= 0; i-- {
			t := m.Triangles[i]
			b.PrependInt32(t[2])
			b.PrependInt32(t[1])
			b.PrependInt32(t[0])
		}
		triOff = b.EndVector(len(m.Triangles))
	}
	vertOff := prependPoints(b, m.Vertices)

	b.PrependOffsetField(quadOff)
	b.PrependOffsetField(triOff)
	b.PrependOffsetField(vertOff)
	b.PrependByte(byte(KindMesh))
	return b.Finish(b.Mark())
}

// EncodeIntList encodes a flat integer sequence.
func EncodeIntList(v []int32) []byte {
	b := codec.NewBuilder(64 + 4*len(v))
	off := prependInts(b, v)
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindIntList))
	return b.Finish(b.Mark())
}

// EncodeRealList encodes a flat real sequence.
func EncodeRealList(v []float64) []byte {
	b := codec.NewBuilder(64 + 8*len(v))
	off := prependReals(b, v)
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindRealList))
	return b.Finish(b.Mark())
}

// EncodeIntPairList encodes a sequence of integer pairs.
func EncodeIntPairList(v []IntPair) []byte {
	b := codec.NewBuilder(64 + 8*len(v))
	var off codec.Offset
	if v != nil {
		for i := len(v) - 1; i >= 0; i-- {
			b.PrependInt32(v[i][1])
			b.PrependInt32(v[i][0])
		}
		off = b.EndVector(len(v))
	}
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindIntPairList))
	return b.Finish(b.Mark())
}

// EncodeRealPairList encodes a sequence of real pairs.
func EncodeRealPairList(v []RealPair) []byte {
	b := codec.NewBuilder(64 + 16*len(v))
	var off codec.Offset
	if v != nil {
		for i := len(v) - 1; i >= 0; i-- {
			b.PrependFloat64(v[i][1])
			b.PrependFloat64(v[i][0])
		}
		off = b.EndVector(len(v))
	}
	b.PrependOffsetField(off)
	b.PrependByte(byte(KindRealPairList))
	return b.Finish(b.Mark())
}

// EncodeIntListList encodes a sequence of integer sequences losslessly as a
// flattened value vector plus a parallel sizes vector. Zero-length inner
// sequences are representable and round-trip; inner nil-ness is not
// distinguishable from inner emptiness on the wire.
func EncodeIntListList(v [][]int32) []byte {
	total := 0
	for _, inner := range v {
		total += len(inner)
	}
	b := codec.NewBuilder(96 + 4*(total+len(v)))

	var valOff, sizeOff codec.Offset
	if v != nil {
		for i := len(v) - 1; i >= 0; i-- {
			b.PrependInt32(int32(len(v[i])))
		}
		sizeOff = b.EndVector(len(v))
		for i := len(v) - 1; i >= 0; i-- {
			inner := v[i]
			for j := len(inner) - 1; j >= 0; j-- {
				b.PrependInt32(inner[j])
			}
		}
		valOff = b.EndVector(total)
	}
	b.PrependOffsetField(sizeOff)
	b.PrependOffsetField(valOff)
	b.PrependByte(byte(KindIntListList))
	return b.Finish(b.Mark())
}
