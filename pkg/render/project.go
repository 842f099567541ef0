package render

import (
	"math"

	"github.com/mdimension/mdim/pkg/geom"
)

// DefaultProjectionDistance is the camera distance from the projection plane.
const DefaultProjectionDistance = 4.0

// minSafeDistance clamps the perspective denominator so vertices crossing
// the projection plane stay finite.
const minSafeDistance = 0.01

// Point3 is a projected 3D position.
type Point3 [3]float64

// Project perspective-projects N-dimensional vertices to 3D. The first three
// coordinates survive; every higher coordinate folds into an effective depth,
// normalized by √(extra dimensions) so deep objects do not wash out, and the
// perspective division scales x, y, z by 1/(distance − depth). A distance of
// zero means [DefaultProjectionDistance]. Dimensions below 3 yield nil.
func Project(vertices []geom.Vector, distance float64) []Point3 {
	if len(vertices) == 0 || len(vertices[0]) < 3 {
		return nil
	}
	if distance == 0 {
		distance = DefaultProjectionDistance
	}

	dim := len(vertices[0])
	higher := dim - 3
	normalizer := 1.0
	if higher > 0 {
		normalizer = math.Sqrt(float64(higher))
	}

	out := make([]Point3, len(vertices))
	for i, v := range vertices {
		depth := 0.0
		for d := 3; d < dim && d < len(v); d++ {
			depth += v[d]
		}
		if higher > 0 {
			depth /= normalizer
		}

		denom := distance - depth
		if math.Abs(denom) < minSafeDistance {
			if denom >= 0 {
				denom = minSafeDistance
			} else {
				denom = -minSafeDistance
			}
		}
		scale := 1 / denom

		out[i] = Point3{v[0] * scale, v[1] * scale, v[2] * scale}
	}
	return out
}
