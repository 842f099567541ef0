package object

import (
	"math"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// Torus radii before normalization.
const (
	torusMajorRadius = 1.0
	torusMinorRadius = 0.4
)

// GenerateCliffordTorus samples the flat torus in R⁴,
// (cos u, sin u, cos v, sin v)/√2, on a Resolution×Resolution grid of the two
// angles. Extra coordinates beyond the fourth stay zero. Grid neighbors are
// connected with wraparound, so every vertex has degree 4. Requires
// dimension ≥ 4. Metadata properties carry the grid resolution, which the
// face detector needs to cut the surface into quads.
func GenerateCliffordTorus(dim int, cfg Config) (*Geometry, error) {
	if dim < 4 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: clifford torus requires at least 4, got %d", dim)
	}
	cfg = cfg.withDefaults()
	res, err := torusResolution(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	inv := 1 / math.Sqrt2
	vertices := make([]geom.Vector, 0, res*res)
	for iu := 0; iu < res; iu++ {
		u := 2 * math.Pi * float64(iu) / float64(res)
		for iv := 0; iv < res; iv++ {
			v := 2 * math.Pi * float64(iv) / float64(res)
			p := geom.NewVector(dim, 0)
			p[0] = inv * math.Cos(u)
			p[1] = inv * math.Sin(u)
			p[2] = inv * math.Cos(v)
			p[3] = inv * math.Sin(v)
			vertices = append(vertices, p)
		}
	}

	edges := gridEdges(res)
	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeCliffordTorus,
		Vertices:  vertices,
		Edges:     edges,
		Metadata: map[string]any{
			"properties": map[string]any{
				"surface":    "clifford",
				"resolution": res,
				"radius":     inv,
			},
		},
	}, nil
}

// GenerateNestedTorus samples a torus of revolution whose minor circle spills
// into the higher axes: the first three coordinates trace the familiar 3D
// torus, and each additional axis carries a harmonic of the angles at half
// the previous radius, nesting the tube through every available dimension.
// Requires dimension ≥ 3. Metadata properties carry the grid resolution.
func GenerateNestedTorus(dim int, cfg Config) (*Geometry, error) {
	if dim < 3 {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension too small: nested torus requires at least 3, got %d", dim)
	}
	cfg = cfg.withDefaults()
	res, err := torusResolution(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vertices := make([]geom.Vector, 0, res*res)
	for iu := 0; iu < res; iu++ {
		u := 2 * math.Pi * float64(iu) / float64(res)
		for iv := 0; iv < res; iv++ {
			v := 2 * math.Pi * float64(iv) / float64(res)
			p := geom.NewVector(dim, 0)
			ring := torusMajorRadius + torusMinorRadius*math.Cos(v)
			p[0] = ring * math.Cos(u)
			p[1] = ring * math.Sin(u)
			p[2] = torusMinorRadius * math.Sin(v)
			r := torusMinorRadius
			for axis := 3; axis < dim; axis++ {
				r *= 0.5
				harmonic := float64(axis - 1)
				if axis%2 == 0 {
					p[axis] = r * math.Sin(harmonic*u+v)
				} else {
					p[axis] = r * math.Cos(harmonic*v+u)
				}
			}
			vertices = append(vertices, p)
		}
	}

	edges := gridEdges(res)
	centerAndScale(vertices, cfg.Scale)

	return &Geometry{
		Dimension: dim,
		Type:      TypeNestedTorus,
		Vertices:  vertices,
		Edges:     edges,
		Metadata: map[string]any{
			"properties": map[string]any{
				"surface":     "nested",
				"resolution":  res,
				"majorRadius": torusMajorRadius,
				"minorRadius": torusMinorRadius,
			},
		},
	}, nil
}

// torusResolution resolves and validates the grid resolution.
func torusResolution(cfg Config) (int, error) {
	res := cfg.Resolution
	if res == 0 {
		res = DefaultTorusResolution
	}
	if err := errors.ValidateResolution(res); err != nil {
		return 0, err
	}
	return res, nil
}

// gridEdges connects a res×res wraparound grid, index = row*res + col.
// One edge to the next row and one to the next column per vertex, so each
// undirected edge appears exactly once.
func gridEdges(res int) []Edge {
	edges := make([]Edge, 0, 2*res*res)
	for iu := 0; iu < res; iu++ {
		for iv := 0; iv < res; iv++ {
			idx := iu*res + iv
			edges = append(edges, NewEdge(idx, ((iu+1)%res)*res+iv))
			edges = append(edges, NewEdge(idx, iu*res+(iv+1)%res))
		}
	}
	sortEdges(edges)
	return edges
}
