package geocore_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshkit/geocore-go/pkg/geocore"
)

func TestPoint3RoundTrip(t *testing.T) {
	p := geocore.Point3{X: 1.25, Y: -2.5, Z: 1e-9}
	got, err := geocore.DecodePoint3(geocore.EncodePoint3(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPoint3ZeroEncodesAsAbsent(t *testing.T) {
	got, err := geocore.DecodePoint3(geocore.EncodePoint3(geocore.Point3{}))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestPoint3ListRoundTrip(t *testing.T) {
	pts := []geocore.Point3{{X: 1}, {Y: 2}, {Z: -3.5}, {X: 4, Y: 5, Z: 6}}
	got, err := geocore.DecodePoint3List(geocore.EncodePoint3List(pts))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(pts, got))
}

func TestSequenceAbsenceVersusEmpty(t *testing.T) {
	// nil encodes as an absent field and decodes back to nil.
	got, err := geocore.DecodeRealList(geocore.EncodeRealList(nil))
	require.NoError(t, err)
	assert.Nil(t, got)

	// A present-but-empty sequence stays a non-nil empty sequence.
	got, err = geocore.DecodeRealList(geocore.EncodeRealList([]float64{}))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got, 0)

	gotPts, err := geocore.DecodePoint3List(geocore.EncodePoint3List(nil))
	require.NoError(t, err)
	assert.Nil(t, gotPts)

	gotPts, err = geocore.DecodePoint3List(geocore.EncodePoint3List([]geocore.Point3{}))
	require.NoError(t, err)
	require.NotNil(t, gotPts)
	assert.Len(t, gotPts, 0)
}

func TestIntListRoundTrip(t *testing.T) {
	v := []int32{0, -1, 2147483647, -2147483648, 42}
	got, err := geocore.DecodeIntList(geocore.EncodeIntList(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestRealListRoundTrip(t *testing.T) {
	v := []float64{0, -0.5, 1e300, -1e-300}
	got, err := geocore.DecodeRealList(geocore.EncodeRealList(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestIntPairListRoundTrip(t *testing.T) {
	v := []geocore.IntPair{{0, 1}, {5, 5}, {-2, 7}}
	got, err := geocore.DecodeIntPairList(geocore.EncodeIntPairList(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestRealPairListRoundTrip(t *testing.T) {
	v := []geocore.RealPair{{0.5, -0.5}, {3.25, 3.25}}
	got, err := geocore.DecodeRealPairList(geocore.EncodeRealPairList(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestIntListListRoundTrip(t *testing.T) {
	v := [][]int32{{1, 2}, {}, {3}}
	got, err := geocore.DecodeIntListList(geocore.EncodeIntListList(v))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int32{1, 2}, got[0])
	assert.Len(t, got[1], 0)
	assert.NotNil(t, got[1])
	assert.Equal(t, []int32{3}, got[2])
}

func TestIntListListEmptyAndNil(t *testing.T) {
	got, err := geocore.DecodeIntListList(geocore.EncodeIntListList(nil))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = geocore.DecodeIntListList(geocore.EncodeIntListList([][]int32{}))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestMeshRoundTrip(t *testing.T) {
	m := &geocore.Mesh{
		Vertices: []geocore.Point3{{X: 0}, {X: 1}, {Y: 1}, {Z: 1}},
		Triangles: []geocore.Triangle{
			{0, 1, 2}, {0, 2, 3},
		},
	}
	got, err := geocore.DecodeMesh(geocore.EncodeMesh(m, false))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(m, got))
}

func TestMeshZeroFacesRoundTrip(t *testing.T) {
	m := &geocore.Mesh{Vertices: []geocore.Point3{{X: 1}}}
	got, err := geocore.DecodeMesh(geocore.EncodeMesh(m, false))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(m, got))

	// Entirely empty mesh.
	got, err = geocore.DecodeMesh(geocore.EncodeMesh(&geocore.Mesh{}, false))
	require.NoError(t, err)
	assert.Nil(t, got.Vertices)
	assert.Nil(t, got.Triangles)
	assert.Nil(t, got.Quads)
}

func TestKindMismatchRejected(t *testing.T) {
	buf := geocore.EncodeIntList([]int32{1})
	_, err := geocore.DecodeRealList(buf)
	assert.ErrorIs(t, err, geocore.ErrKindMismatch)
}

func TestNewPoint3Validation(t *testing.T) {
	_, err := geocore.NewPoint3([]float64{1, 2})
	assert.Error(t, err)

	_, err = geocore.NewPoint3([]float64{1, 2, 3, 4})
	assert.Error(t, err)

	p, err := geocore.NewPoint3([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, geocore.Point3{X: 1, Y: 2, Z: 3}, p)
}

func TestEncodedBufferIsSelfContained(t *testing.T) {
	// Decoded values must not alias the source buffer.
	buf := geocore.EncodeIntList([]int32{7, 8, 9})
	got, err := geocore.DecodeIntList(buf)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xff
	}
	assert.Equal(t, []int32{7, 8, 9}, got)
}
