package object

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// GenerateHypercube builds the d-hypercube: 2^d vertices with ±1 coordinates,
// edges connecting vertices whose coordinate signs differ in exactly one bit.
// Requires dimension ≥ 2 and 2^d within the configured vertex budget.
func GenerateHypercube(dim int, cfg Config) (*Geometry, error) {
	cfg = cfg.withDefaults()
	if err := checkCubeDimension(TypeHypercube, dim, 2, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := 1 << dim
	vertices := make([]geom.Vector, n)
	for i := 0; i < n; i++ {
		vertices[i] = signVertex(dim, i)
	}

	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if diff := i ^ j; diff&(diff-1) == 0 {
				edges = append(edges, Edge{i, j})
			}
		}
	}

	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeHypercube,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}

// GenerateDemihypercube keeps the even-parity half of the hypercube's
// vertices (an even number of +1 coordinates) and connects vertices that
// differ in exactly two coordinates. Requires dimension ≥ 3.
func GenerateDemihypercube(dim int, cfg Config) (*Geometry, error) {
	cfg = cfg.withDefaults()
	if err := checkCubeDimension(TypeDemihypercube, dim, 3, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var vertices []geom.Vector
	for i := 0; i < 1<<dim; i++ {
		if bits.OnesCount(uint(i))%2 == 0 {
			vertices = append(vertices, signVertex(dim, i))
		}
	}

	var edges []Edge
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			diff := 0
			for k := 0; k < dim; k++ {
				if abs(vertices[i][k]-vertices[j][k]) > 0.1 {
					diff++
				}
			}
			if diff == 2 {
				edges = append(edges, Edge{i, j})
			}
		}
	}

	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeDemihypercube,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}

// GenerateRectified places vertices at the midpoints of the hypercube's
// edges: exactly one coordinate zero, the rest ±1. Edges connect nearest
// neighbors. Requires dimension ≥ 3.
func GenerateRectified(dim int, cfg Config) (*Geometry, error) {
	cfg = cfg.withDefaults()
	if err := checkCubeDimension(TypeRectified, dim, 3, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var vertices []geom.Vector
	for zeroIdx := 0; zeroIdx < dim; zeroIdx++ {
		for config := 0; config < 1<<(dim-1); config++ {
			v := geom.NewVector(dim, 0)
			bit := 0
			for j := 0; j < dim; j++ {
				if j == zeroIdx {
					continue
				}
				if config&(1<<bit) != 0 {
					v[j] = 1
				} else {
					v[j] = -1
				}
				bit++
			}
			vertices = append(vertices, v)
		}
	}

	edges := minDistanceEdges(vertices, 0.01, 1.5)
	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeRectified,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}

// GenerateTruncated cuts the hypercube's corners: one coordinate at
// ±(√2−1), the rest at ±1, over every choice of truncated axis and sign
// configuration. Requires dimension ≥ 3.
func GenerateTruncated(dim int, cfg Config) (*Geometry, error) {
	cfg = cfg.withDefaults()
	if err := checkCubeDimension(TypeTruncated, dim, 3, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t := math.Sqrt2 - 1
	var vertices []geom.Vector
	seen := make(map[string]bool)
	for truncIdx := 0; truncIdx < dim; truncIdx++ {
		for config := 0; config < 1<<dim; config++ {
			v := geom.NewVector(dim, 0)
			for j := 0; j < dim; j++ {
				sign := -1.0
				if config&(1<<j) != 0 {
					sign = 1
				}
				if j == truncIdx {
					v[j] = sign * t
				} else {
					v[j] = sign
				}
			}
			key := vertexKey(v)
			if !seen[key] {
				seen[key] = true
				vertices = append(vertices, v)
			}
		}
	}

	edges := minDistanceEdges(vertices, 0.01, 2*t+0.1)
	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeTruncated,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}

// signVertex decodes a sign bitmask into a ±1 vertex.
func signVertex(dim, mask int) geom.Vector {
	v := geom.NewVector(dim, 0)
	for j := 0; j < dim; j++ {
		if mask&(1<<j) != 0 {
			v[j] = 1
		} else {
			v[j] = -1
		}
	}
	return v
}

// vertexKey renders a vertex rounded to 4 decimals for deduplication.
func vertexKey(v geom.Vector) string {
	var b strings.Builder
	for i, c := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		r := math.Round(c*1e4) / 1e4
		if r == 0 {
			r = 0 // fold −0 into +0
		}
		b.WriteString(strconv.FormatFloat(r, 'f', 4, 64))
	}
	return b.String()
}

// checkCubeDimension enforces a family's minimum dimension and the global
// vertex budget for 2^d-sized generators.
func checkCubeDimension(t Type, dim, min int, cfg Config) error {
	if dim < min {
		return errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: %s requires at least %d, got %d", t, min, dim)
	}
	if dim > errors.MaxDimension {
		return errors.New(errors.ErrCodeInvalidDimension,
			"dimension too large: %s supports at most %d, got %d", t, errors.MaxDimension, dim)
	}
	if 1<<dim > cfg.MaxVertices {
		return errors.New(errors.ErrCodeInvalidConfig,
			"%s at dimension %d exceeds the vertex budget of %d", t, dim, cfg.MaxVertices)
	}
	return nil
}
