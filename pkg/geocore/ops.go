package geocore

import (
	"context"
	"errors"
	"fmt"

	"github.com/meshkit/geocore-go/pkg/geocore/internal/native"
)

// The operation wrappers below are the whole dispatch story from a caller's
// perspective: encode inputs, cross the boundary, decode outputs. They hold
// no state between calls and are safe to invoke concurrently. A native
// failure surfaces as ErrCallFailed with no partial value; this layer never
// retries.

// MeanCurvature computes per-vertex mean curvature.
func (l *Library) MeanCurvature(ctx context.Context, m *Mesh) ([]float64, error) {
	return l.meshToReals(ctx, opMeanCurvature, m)
}

// GaussianCurvature computes per-vertex Gaussian curvature.
func (l *Library) GaussianCurvature(ctx context.Context, m *Mesh) ([]float64, error) {
	return l.meshToReals(ctx, opGaussianCurvature, m)
}

// GeodesicDistance computes per-vertex geodesic distance from the given
// source vertex indices.
func (l *Library) GeodesicDistance(ctx context.Context, m *Mesh, sources []int32) ([]float64, error) {
	outs, err := l.dispatch(ctx, opGeodesicDistance,
		[][]byte{EncodeMesh(m, true), EncodeIntList(sources)}, "")
	if err != nil {
		return nil, err
	}
	return DecodeRealList(outs[0])
}

// Isolines extracts level-set polyline segments of a per-vertex scalar
// field at the given levels. It returns the segment endpoints and an index
// pair per segment into that point sequence.
func (l *Library) Isolines(ctx context.Context, m *Mesh, field, levels []float64) ([]Point3, []IntPair, error) {
	outs, err := l.dispatch(ctx, opIsolines,
		[][]byte{EncodeMesh(m, true), EncodeRealList(field), EncodeRealList(levels)}, "")
	if err != nil {
		return nil, nil, err
	}
	pts, err := DecodePoint3List(outs[0])
	if err != nil {
		return nil, nil, err
	}
	segs, err := DecodeIntPairList(outs[1])
	if err != nil {
		return nil, nil, err
	}
	return pts, segs, nil
}

// VertexAdjacency returns, for each vertex, the sorted indices of its
// neighboring vertices.
func (l *Library) VertexAdjacency(ctx context.Context, m *Mesh) ([][]int32, error) {
	outs, err := l.dispatch(ctx, opVertexAdjacency, [][]byte{EncodeMesh(m, true)}, "")
	if err != nil {
		return nil, err
	}
	return DecodeIntListList(outs[0])
}

// PrincipalDirections computes the two principal curvature values per
// vertex.
func (l *Library) PrincipalDirections(ctx context.Context, m *Mesh) ([]RealPair, error) {
	outs, err := l.dispatch(ctx, opPrincipalDirections, [][]byte{EncodeMesh(m, true)}, "")
	if err != nil {
		return nil, err
	}
	return DecodeRealPairList(outs[0])
}

// LaplacianScalar solves a Laplacian scalar field over the mesh with the
// given anchored vertices and values.
func (l *Library) LaplacianScalar(ctx context.Context, m *Mesh, anchors []int32, values []float64) ([]float64, error) {
	return l.scalarSolve(ctx, opLaplacianScalar, m, anchors, values)
}

// ConstrainedScalar solves a constrained scalar field over the mesh. Its
// signature matches LaplacianScalar but it dispatches to a distinct native
// entry point; the two are not assumed interchangeable.
func (l *Library) ConstrainedScalar(ctx context.Context, m *Mesh, anchors []int32, values []float64) ([]float64, error) {
	return l.scalarSolve(ctx, opConstrainedScalar, m, anchors, values)
}

// LoadMesh reads a mesh from a file entirely on the native side; the
// returned mesh is decoded from a buffer the native module produced from
// the path.
func (l *Library) LoadMesh(ctx context.Context, path string) (*Mesh, error) {
	if path == "" {
		return nil, fmt.Errorf("geocore: empty mesh path")
	}
	outs, err := l.dispatch(ctx, opLoadMesh, nil, path)
	if err != nil {
		return nil, err
	}
	return DecodeMesh(outs[0])
}

// SaveMesh writes a mesh to a file on the native side.
func (l *Library) SaveMesh(ctx context.Context, m *Mesh, path string) error {
	if path == "" {
		return fmt.Errorf("geocore: empty mesh path")
	}
	_, err := l.dispatch(ctx, opSaveMesh, [][]byte{EncodeMesh(m, false)}, path)
	return err
}

func (l *Library) meshToReals(ctx context.Context, op opDesc, m *Mesh) ([]float64, error) {
	outs, err := l.dispatch(ctx, op, [][]byte{EncodeMesh(m, true)}, "")
	if err != nil {
		return nil, err
	}
	return DecodeRealList(outs[0])
}

func (l *Library) scalarSolve(ctx context.Context, op opDesc, m *Mesh, anchors []int32, values []float64) ([]float64, error) {
	outs, err := l.dispatch(ctx, op,
		[][]byte{EncodeMesh(m, true), EncodeIntList(anchors), EncodeRealList(values)}, "")
	if err != nil {
		return nil, err
	}
	return DecodeRealList(outs[0])
}

// dispatch remaps boundary-layer errors onto the public sentinels so that
// callers only ever match against this package's errors.
func (l *Library) dispatch(ctx context.Context, op opDesc, inputs [][]byte, path string) ([][]byte, error) {
	outs, err := l.dispatcher.Call(ctx, op, inputs, path)
	switch {
	case err == nil:
		return outs, nil
	case errors.Is(err, native.ErrUnavailable):
		return nil, fmt.Errorf("%s: %w", op.Name, ErrUnavailable)
	case errors.Is(err, native.ErrCallFailed):
		return nil, fmt.Errorf("%s: %w", op.Name, ErrCallFailed)
	default:
		return nil, err
	}
}
