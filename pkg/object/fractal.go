package object

import (
	"math"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// Fractal sampling bounds. The classic power-8 bulb fits inside radius 1.2.
const (
	fractalExtent    = 1.2
	fractalBailout   = 2.0
	maxFractalGrid   = 64
	fractalKNNBudget = 6000
)

// GenerateFractal samples an N-dimensional mandelbulb as a point cloud:
// a Resolution³ lattice over the first three axes is iterated under the
// hyperspherical power map z → z^p + c, and lattice points that stay bounded
// for the full iteration budget are kept. Axes beyond the third hold the
// zero slice of the set. The cloud is wired with k-nearest-neighbor edges
// and the final radius of every kept point lands in metadata as its escape
// value for coloring. Requires dimension ≥ 3.
func GenerateFractal(dim int, cfg Config) (*Geometry, error) {
	if dim < 3 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: mandelbulb requires at least 3, got %d", dim)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	res := cfg.Resolution
	if res == 0 {
		res = DefaultFractalGrid
	}
	if res < 3 || res > maxFractalGrid {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"fractal resolution must be in [3, %d], got %d", maxFractalGrid, res)
	}

	var vertices []geom.Vector
	var escape []float64

	step := 2 * fractalExtent / float64(res-1)
sample:
	for ix := 0; ix < res; ix++ {
		for iy := 0; iy < res; iy++ {
			for iz := 0; iz < res; iz++ {
				c := geom.NewVector(dim, 0)
				c[0] = -fractalExtent + float64(ix)*step
				c[1] = -fractalExtent + float64(iy)*step
				c[2] = -fractalExtent + float64(iz)*step

				r, bounded := iterateBulb(c, cfg.Power, cfg.Iterations)
				if !bounded {
					continue
				}
				vertices = append(vertices, c)
				escape = append(escape, r)
				if len(vertices) >= cfg.MaxVertices {
					break sample
				}
			}
		}
	}

	// KNN wiring is quadratic in the cloud size; past the budget the cloud
	// is dense enough that a wireframe adds nothing, so leave it unwired.
	var edges []Edge
	if len(vertices) <= fractalKNNBudget {
		edges = KNNEdges(vertices, cfg.Neighbors)
	}

	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeMandelbulb,
		Vertices:  vertices,
		Edges:     edges,
		Metadata: map[string]any{
			"escape":     escape,
			"power":      cfg.Power,
			"iterations": cfg.Iterations,
		},
	}, nil
}

// iterateBulb runs the escape-time loop for one sample. Returns the final
// radius and whether the orbit stayed within the bailout radius for the full
// iteration budget.
func iterateBulb(c geom.Vector, power float64, iterations int) (float64, bool) {
	z := c.Clone()
	r := 0.0
	for n := 0; n < iterations; n++ {
		r = z.Magnitude()
		if r > fractalBailout {
			return r, false
		}
		z = sphericalPower(z, r, power).Add(c)
	}
	return r, true
}

// sphericalPower raises an N-dimensional point to a power in hyperspherical
// coordinates: the radius becomes r^p and every angular coordinate is
// multiplied by p. This is the standard triplex power extended to arbitrary
// dimension.
func sphericalPower(z geom.Vector, r, power float64) geom.Vector {
	dim := len(z)
	out := geom.NewVector(dim, 0)
	if r < 1e-12 {
		return out
	}

	// Forward pass: recover the d−1 hyperspherical angles.
	angles := make([]float64, dim-1)
	tail := r
	for i := 0; i < dim-1; i++ {
		if tail < 1e-12 {
			angles[i] = 0
			continue
		}
		cos := z[i] / tail
		cos = math.Max(-1, math.Min(1, cos))
		angles[i] = math.Acos(cos)
		tail *= math.Sin(angles[i])
	}
	if z[dim-1] < 0 {
		angles[dim-2] = 2*math.Pi - angles[dim-2]
	}

	// Power map and reconstruction.
	rp := math.Pow(r, power)
	sinProduct := 1.0
	for i := 0; i < dim-1; i++ {
		a := power * angles[i]
		out[i] = rp * sinProduct * math.Cos(a)
		sinProduct *= math.Sin(a)
	}
	out[dim-1] = rp * sinProduct
	return out
}
