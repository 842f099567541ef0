package object

import (
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// GenerateSimplex builds the standard d-simplex: the origin plus one unit
// vector per axis, recentered on the centroid, normalized into [−1, 1], with
// the complete graph as edge set. Requires dimension ≥ 3.
func GenerateSimplex(dim int, cfg Config) (*Geometry, error) {
	if dim < 3 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: simplex requires at least 3, got %d", dim)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vertices := make([]geom.Vector, 0, dim+1)
	vertices = append(vertices, geom.NewVector(dim, 0))
	for i := 0; i < dim; i++ {
		v := geom.NewVector(dim, 0)
		v[i] = 1
		vertices = append(vertices, v)
	}

	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeSimplex,
		Vertices:  vertices,
		Edges:     completeEdges(len(vertices)),
	}, nil
}
