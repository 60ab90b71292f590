package geocore

import (
	"fmt"

	"github.com/meshkit/geocore-go/pkg/geocore/internal/codec"
)

// parseRoot checks the fixed-position root reference and the kind tag. The
// decoders assume the rest of the buffer was produced by the matching
// encoder; buffers from unrelated or corrupt sources are out of contract.
func parseRoot(buf []byte, want Kind) (*codec.Parser, int, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return nil, 0, err
	}
	if got := Kind(p.Byte(p.Root())); got != want {
		return nil, 0, fmt.Errorf("%w: kind %s, expected %s", ErrKindMismatch, got, want)
	}
	return p, p.Root(), nil
}

func decodePoints(p *codec.Parser, fieldPos int) []Point3 {
	vec, ok := p.Indirect(fieldPos)
	if !ok {
		return nil
	}
	n := p.VectorLen(vec)
	pts := make([]Point3, n)
	for i := 0; i < n; i++ {
		e := p.VectorElem(vec, 24, i)
		pts[i] = Point3{X: p.Float64(e), Y: p.Float64(e + 8), Z: p.Float64(e + 16)}
	}
	return pts
}

func decodeInts(p *codec.Parser, fieldPos int) []int32 {
	vec, ok := p.Indirect(fieldPos)
	if !ok {
		return nil
	}
	n := p.VectorLen(vec)
	v := make([]int32, n)
	for i := 0; i < n; i++ {
		v[i] = p.Int32(p.VectorElem(vec, 4, i))
	}
	return v
}

func decodeReals(p *codec.Parser, fieldPos int) []float64 {
	vec, ok := p.Indirect(fieldPos)
	if !ok {
		return nil
	}
	n := p.VectorLen(vec)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = p.Float64(p.VectorElem(vec, 8, i))
	}
	return v
}

// DecodePoint3 decodes a single point. An absent point field yields the
// zero point, never an error.
func DecodePoint3(buf []byte) (Point3, error) {
	p, root, err := parseRoot(buf, KindPoint3)
	if err != nil {
		return Point3{}, err
	}
	pos, ok := p.Indirect(root + 1)
	if !ok {
		return Point3{}, nil
	}
	return Point3{X: p.Float64(pos), Y: p.Float64(pos + 8), Z: p.Float64(pos + 16)}, nil
}

// DecodePoint3List decodes an ordered point sequence.
func DecodePoint3List(buf []byte) ([]Point3, error) {
	p, root, err := parseRoot(buf, KindPoint3List)
	if err != nil {
		return nil, err
	}
	return decodePoints(p, root+1), nil
}

// DecodeMesh decodes a mesh. At most one of Triangles and Quads is
// populated, mirroring the face-kind exclusivity of the wire form.
func DecodeMesh(buf []byte) (*Mesh, error) {
	p, root, err := parseRoot(buf, KindMesh)
	if err != nil {
		return nil, err
	}
	m := &Mesh{Vertices: decodePoints(p, root+1)}
	if vec, ok := p.Indirect(root + 5); ok {
		n := p.VectorLen(vec)
		m.Triangles = make([]Triangle, n)
		for i := 0; i < n; i++ {
			e := p.VectorElem(vec, 12, i)
			m.Triangles[i] = Triangle{p.Int32(e), p.Int32(e + 4), p.Int32(e + 8)}
		}
	}
	if vec, ok := p.Indirect(root + 9); ok {
		n := p.VectorLen(vec)
		m.Quads = make([]Quad, n)
		for i := 0; i < n; i++ {
			e := p.VectorElem(vec, 16, i)
			m.Quads[i] = Quad{p.Int32(e), p.Int32(e + 4), p.Int32(e + 8), p.Int32(e + 12)}
		}
	}
	return m, nil
}

// DecodeIntList decodes a flat integer sequence.
func DecodeIntList(buf []byte) ([]int32, error) {
	p, root, err := parseRoot(buf, KindIntList)
	if err != nil {
		return nil, err
	}
	return decodeInts(p, root+1), nil
}

// DecodeRealList decodes a flat real sequence.
func DecodeRealList(buf []byte) ([]float64, error) {
	p, root, err := parseRoot(buf, KindRealList)
	if err != nil {
		return nil, err
	}
	return decodeReals(p, root+1), nil
}

// DecodeIntPairList decodes a sequence of integer pairs.
func DecodeIntPairList(buf []byte) ([]IntPair, error) {
	p, root, err := parseRoot(buf, KindIntPairList)
	if err != nil {
		return nil, err
	}
	vec, ok := p.Indirect(root + 1)
	if !ok {
		return nil, nil
	}
	n := p.VectorLen(vec)
	v := make([]IntPair, n)
	for i := 0; i < n; i++ {
		e := p.VectorElem(vec, 8, i)
		v[i] = IntPair{p.Int32(e), p.Int32(e + 4)}
	}
	return v, nil
}

// DecodeRealPairList decodes a sequence of real pairs.
func DecodeRealPairList(buf []byte) ([]RealPair, error) {
	p, root, err := parseRoot(buf, KindRealPairList)
	if err != nil {
		return nil, err
	}
	vec, ok := p.Indirect(root + 1)
	if !ok {
		return nil, nil
	}
	n := p.VectorLen(vec)
	v := make([]RealPair, n)
	for i := 0; i < n; i++ {
		e := p.VectorElem(vec, 16, i)
		v[i] = RealPair{p.Float64(e), p.Float64(e + 8)}
	}
	return v, nil
}

// DecodeIntListList reconstructs a nested integer sequence from its
// flattened values and sizes vectors.
func DecodeIntListList(buf []byte) ([][]int32, error) {
	p, root, err := parseRoot(buf, KindIntListList)
	if err != nil {
		return nil, err
	}
	values := decodeInts(p, root+1)
	sizes := decodeInts(p, root+5)
	if sizes == nil {
		return nil, nil
	}
	out := make([][]int32, len(sizes))
	pos := 0
	for i, n := range sizes {
		inner := make([]int32, n)
		copy(inner, values[pos:pos+int(n)])
		out[i] = inner
		pos += int(n)
	}
	return out, nil
}
