package geom

import "math"

// Vector is a point or direction in N-dimensional space.
// Its length is its dimension.
type Vector []float64

// NewVector creates a vector of the given dimension with every coordinate
// set to fill.
func NewVector(dim int, fill float64) Vector {
	v := make(Vector, dim)
	if fill != 0 {
		for i := range v {
			v[i] = fill
		}
	}
	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Dot returns the dot product of v and w. If the lengths differ, the extra
// coordinates of the longer vector are ignored.
func (v Vector) Dot(w Vector) float64 {
	n := min(len(v), len(w))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += v[i] * w[i]
	}
	return sum
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Normalized returns the unit vector in the direction of v, or a zero vector
// when v has (near-)zero magnitude.
func (v Vector) Normalized() Vector {
	mag := v.Magnitude()
	if mag < 1e-10 {
		return NewVector(len(v), 0)
	}
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = c / mag
	}
	return out
}

// Add returns v + w element-wise. Lengths must match; extra coordinates of a
// longer operand are ignored.
func (v Vector) Add(w Vector) Vector {
	n := min(len(v), len(w))
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v − w element-wise.
func (v Vector) Sub(w Vector) Vector {
	n := min(len(v), len(w))
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = v[i] - w[i]
	}
	return out
}

// ScaledBy returns v scaled by a scalar factor.
func (v Vector) ScaledBy(s float64) Vector {
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = c * s
	}
	return out
}

// DistanceSquared returns the squared Euclidean distance from v to w.
// Prefer this over [Vector.Distance] when only comparing distances.
func (v Vector) DistanceSquared(w Vector) float64 {
	n := min(len(v), len(w))
	sum := 0.0
	for i := 0; i < n; i++ {
		d := v[i] - w[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance from v to w.
func (v Vector) Distance(w Vector) float64 {
	return math.Sqrt(v.DistanceSquared(w))
}
