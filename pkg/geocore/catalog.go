package geocore

import "github.com/meshkit/geocore-go/pkg/geocore/internal/native"

type opDesc = native.OpDesc

// Operation catalog. Each entry names one native entry point together with
// the value kinds of its boundary signature. LaplacianScalar and
// ConstrainedScalar share a signature but are deliberately kept as distinct
// entries bound to distinct symbols; they are not known to be
// interchangeable.
var (
	opMeanCurvature = native.OpDesc{
		Name: "MeanCurvature", Symbol: "geocore_mean_curvature", NumOutputs: 1,
	}
	opGaussianCurvature = native.OpDesc{
		Name: "GaussianCurvature", Symbol: "geocore_gaussian_curvature", NumOutputs: 1,
	}
	opGeodesicDistance = native.OpDesc{
		Name: "GeodesicDistance", Symbol: "geocore_geodesic_distance", NumOutputs: 1,
	}
	opIsolines = native.OpDesc{
		Name: "Isolines", Symbol: "geocore_isolines", NumOutputs: 2,
	}
	opVertexAdjacency = native.OpDesc{
		Name: "VertexAdjacency", Symbol: "geocore_vertex_adjacency", NumOutputs: 1,
	}
	opPrincipalDirections = native.OpDesc{
		Name: "PrincipalDirections", Symbol: "geocore_principal_directions", NumOutputs: 1,
	}
	opLaplacianScalar = native.OpDesc{
		Name: "LaplacianScalar", Symbol: "geocore_laplacian_scalar", NumOutputs: 1,
	}
	opConstrainedScalar = native.OpDesc{
		Name: "ConstrainedScalar", Symbol: "geocore_constrained_scalar", NumOutputs: 1,
	}
	opLoadMesh = native.OpDesc{
		Name: "LoadMesh", Symbol: "geocore_load_mesh", NumOutputs: 1, TakesPath: true,
	}
	opSaveMesh = native.OpDesc{
		Name: "SaveMesh", Symbol: "geocore_save_mesh", NumOutputs: 0, TakesPath: true,
	}
)

// OpInfo describes a cataloged operation for adapters and operator tooling.
type OpInfo struct {
	Name    string
	Symbol  string
	Inputs  []Kind
	Outputs []Kind
}

// Operations lists the exposed operation catalog.
func Operations() []OpInfo {
	return []OpInfo{
		{"MeanCurvature", opMeanCurvature.Symbol, []Kind{KindMesh}, []Kind{KindRealList}},
		{"GaussianCurvature", opGaussianCurvature.Symbol, []Kind{KindMesh}, []Kind{KindRealList}},
		{"GeodesicDistance", opGeodesicDistance.Symbol, []Kind{KindMesh, KindIntList}, []Kind{KindRealList}},
		{"Isolines", opIsolines.Symbol, []Kind{KindMesh, KindRealList, KindRealList}, []Kind{KindPoint3List, KindIntPairList}},
		{"VertexAdjacency", opVertexAdjacency.Symbol, []Kind{KindMesh}, []Kind{KindIntListList}},
		{"PrincipalDirections", opPrincipalDirections.Symbol, []Kind{KindMesh}, []Kind{KindRealPairList}},
		{"LaplacianScalar", opLaplacianScalar.Symbol, []Kind{KindMesh, KindIntList, KindRealList}, []Kind{KindRealList}},
		{"ConstrainedScalar", opConstrainedScalar.Symbol, []Kind{KindMesh, KindIntList, KindRealList}, []Kind{KindRealList}},
		{"LoadMesh", opLoadMesh.Symbol, nil, []Kind{KindMesh}},
		{"SaveMesh", opSaveMesh.Symbol, []Kind{KindMesh}, nil},
	}
}
