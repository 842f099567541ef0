package object

import (
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// GenerateCrossPolytope builds the d-orthoplex: one ±unit vertex per axis,
// 2d in total, with edges between every non-antipodal pair. Vertices 2i and
// 2i+1 are the opposite poles of axis i. Requires dimension ≥ 2.
func GenerateCrossPolytope(dim int, cfg Config) (*Geometry, error) {
	if dim < 2 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: cross-polytope requires at least 2, got %d", dim)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vertices := make([]geom.Vector, 0, 2*dim)
	for i := 0; i < dim; i++ {
		pos := geom.NewVector(dim, 0)
		pos[i] = 1
		neg := geom.NewVector(dim, 0)
		neg[i] = -1
		vertices = append(vertices, pos, neg)
	}

	var edges []Edge
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if i/2 != j/2 { // skip antipodal pairs on the same axis
				edges = append(edges, Edge{i, j})
			}
		}
	}

	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeCrossPolytope,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}
