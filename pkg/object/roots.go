package object

import (
	"math"
	"math/bits"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// shortEdgeTolerance is the relative slack over the minimum pairwise distance
// when wiring root systems.
const shortEdgeTolerance = 0.01

// GenerateRootSystem builds the root vectors of a Lie-algebra root system and
// wires them with short edges. Supported kinds:
//
//   - A_{n−1}: e_i − e_j for i ≠ j, n(n−1) roots, requires dimension ≥ 3
//   - D_n: ±e_i ± e_j for i < j, 2n(n−1) roots, requires dimension ≥ 4
//   - E8: the 240 roots of E8, requires dimension = 8
//
// All roots are emitted at unit length before the usual recenter/normalize
// step. Metadata records the kind and the raw root count.
func GenerateRootSystem(dim int, cfg Config) (*Geometry, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var vertices []geom.Vector
	switch cfg.RootType {
	case RootTypeA:
		if dim < 3 {
			return nil, errors.New(errors.ErrCodeInvalidDimension,
				"dimension too small: A root system requires at least 3, got %d", dim)
		}
		vertices = aRoots(dim)
	case RootTypeD:
		if dim < 4 {
			return nil, errors.New(errors.ErrCodeInvalidDimension,
				"dimension too small: D root system requires at least 4, got %d", dim)
		}
		vertices = dRoots(dim)
	case RootTypeE8:
		if dim != 8 {
			return nil, errors.New(errors.ErrCodeInvalidDimension,
				"E8 root system requires dimension 8, got %d", dim)
		}
		vertices = e8Roots()
	}

	edges := ShortEdges(vertices, shortEdgeTolerance)
	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeRootSystem,
		Vertices:  vertices,
		Edges:     edges,
		Metadata: map[string]any{
			"rootType":  cfg.RootType,
			"rootCount": len(vertices),
		},
	}, nil
}

// aRoots emits the A_{n−1} roots e_i − e_j for all i ≠ j, scaled by 1/√2 to
// unit length.
func aRoots(n int) []geom.Vector {
	inv := 1 / math.Sqrt2
	roots := make([]geom.Vector, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := geom.NewVector(n, 0)
			v[i] = inv
			v[j] = -inv
			roots = append(roots, v)
		}
	}
	return roots
}

// signPairs enumerates the four sign combinations of a two-axis root.
var signPairs = [4][2]float64{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// dRoots emits the D_n roots ±e_i ± e_j for i < j at unit length.
func dRoots(n int) []geom.Vector {
	inv := 1 / math.Sqrt2
	roots := make([]geom.Vector, 0, 2*n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, s := range signPairs {
				v := geom.NewVector(n, 0)
				v[i] = s[0] * inv
				v[j] = s[1] * inv
				roots = append(roots, v)
			}
		}
	}
	return roots
}

// e8Roots emits the 240 roots of E8: the 112 D8-style roots ±e_i ± e_j plus
// the 128 half-integer roots (±½)^8 with an even number of minus signs. The
// half-integer roots have norm √(8·¼) = √2, so the same normalizer brings
// both kinds to unit length.
func e8Roots() []geom.Vector {
	const dim = 8
	inv := 1 / math.Sqrt2

	roots := make([]geom.Vector, 0, 240)
	roots = append(roots, dRoots(dim)...)

	for mask := 0; mask < 256; mask++ {
		if bits.OnesCount(uint(mask))%2 != 0 {
			continue
		}
		v := geom.NewVector(dim, 0)
		for i := 0; i < dim; i++ {
			sign := 1.0
			if mask&(1<<i) != 0 {
				sign = -1
			}
			v[i] = sign * 0.5 * inv
		}
		roots = append(roots, v)
	}
	return roots
}
