package object

import "github.com/mdimension/mdim/pkg/geom"

// centerAndScale recenters vertices on their centroid, normalizes the maximum
// absolute coordinate to 1 so the bounding box fits in [−1, 1], and applies
// the target scale. Degenerate inputs (no vertices, all-zero extent) are left
// unscaled. Mutates in place; callers pass freshly allocated slices.
func centerAndScale(vertices []geom.Vector, scale float64) {
	if len(vertices) == 0 {
		return
	}
	dim := len(vertices[0])

	centroid := make([]float64, dim)
	for _, v := range vertices {
		for i, c := range v {
			centroid[i] += c
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(vertices))
	}

	maxExtent := 0.0
	for _, v := range vertices {
		for i := range v {
			v[i] -= centroid[i]
			if a := abs(v[i]); a > maxExtent {
				maxExtent = a
			}
		}
	}

	if maxExtent > 1e-9 {
		s := scale / maxExtent
		for _, v := range vertices {
			for i := range v {
				v[i] *= s
			}
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
