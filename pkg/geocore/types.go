package geocore

import "fmt"

// Kind identifies a value kind in its encoded form. The kind tag is the
// first byte of every root table and is checked on decode.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPoint3
	KindPoint3List
	KindMesh
	KindIntList
	KindRealList
	KindIntPairList
	KindRealPairList
	KindIntListList
)

func (k Kind) String() string {
	switch k {
	case KindPoint3:
		return "Point3"
	case KindPoint3List:
		return "Point3List"
	case KindMesh:
		return "Mesh"
	case KindIntList:
		return "IntList"
	case KindRealList:
		return "RealList"
	case KindIntPairList:
		return "IntPairList"
	case KindRealPairList:
		return "RealPairList"
	case KindIntListList:
		return "IntListList"
	default:
		return "Invalid"
	}
}

// Point3 is a point or vector in 3-space. The zero value is the origin,
// which is also what an absent optional point decodes to.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 builds a point from a component slice. Anything other than
// exactly three components is rejected immediately; this is never deferred
// to encode time.
func NewPoint3(components []float64) (Point3, error) {
	if len(components) != 3 {
		return Point3{}, fmt.Errorf("geocore: point requires 3 components, got %d", len(components))
	}
	return Point3{X: components[0], Y: components[1], Z: components[2]}, nil
}

// IsZero reports whether p is the origin.
func (p Point3) IsZero() bool { return p == Point3{} }

// Triangle holds three zero-based vertex indices. Keeping indices inside
// [0, len(vertices)) is the caller's responsibility; the codec does not
// check them.
type Triangle [3]int32

// Quad holds four zero-based vertex indices with the same caller-side
// bounds contract as Triangle.
type Quad [4]int32

// IntPair is a positionally ordered pair of integers with no further
// semantic constraint.
type IntPair [2]int32

// RealPair is a positionally ordered pair of reals.
type RealPair [2]float64
