package geom

import (
	"math"

	"github.com/mdimension/mdim/pkg/errors"
)

// Matrix is a square dim×dim matrix stored row-major in a flat slice.
// Data[i*Dim+j] is the entry at row i, column j.
type Matrix struct {
	Dim  int
	Data []float64
}

// Identity creates the dim×dim identity matrix.
func Identity(dim int) Matrix {
	m := Matrix{Dim: dim, Data: make([]float64, dim*dim)}
	for i := 0; i < dim; i++ {
		m.Data[i*dim+i] = 1
	}
	return m
}

// Scale creates a diagonal scale matrix from per-axis factors.
// len(scales) must equal dim.
func Scale(dim int, scales []float64) (Matrix, error) {
	if len(scales) != dim {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"scale factors length %d does not match dimension %d", len(scales), dim)
	}
	m := Matrix{Dim: dim, Data: make([]float64, dim*dim)}
	for i := 0; i < dim; i++ {
		m.Data[i*dim+i] = scales[i]
	}
	return m, nil
}

// Shear creates an elementary shear matrix coupling two axes: the identity
// with both off-diagonal entries (axis1, axis2) and (axis2, axis1) set to
// amount. Applying it adds amount·x[axis2] to coordinate axis1 and
// amount·x[axis1] to coordinate axis2. The symmetric placement keeps
// composition order-dependent for any two shears that share an axis.
func Shear(dim, axis1, axis2 int, amount float64) (Matrix, error) {
	if axis1 < 0 || axis1 >= dim || axis2 < 0 || axis2 >= dim {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"shear axes (%d, %d) out of range for dimension %d", axis1, axis2, dim)
	}
	if axis1 == axis2 {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"shear axes must differ, got axis %d twice", axis1)
	}
	m := Identity(dim)
	m.Data[axis1*dim+axis2] = amount
	m.Data[axis2*dim+axis1] = amount
	return m, nil
}

// Rotation creates a plane rotation matrix rotating by angle radians in the
// coordinate plane spanned by axes i and j.
func Rotation(dim, i, j int, angle float64) (Matrix, error) {
	if i < 0 || i >= dim || j < 0 || j >= dim {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"rotation axes (%d, %d) out of range for dimension %d", i, j, dim)
	}
	if i == j {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"rotation axes must differ, got axis %d twice", i)
	}
	m := Identity(dim)
	cos, sin := math.Cos(angle), math.Sin(angle)
	m.Data[i*dim+i] = cos
	m.Data[j*dim+j] = cos
	m.Data[i*dim+j] = -sin
	m.Data[j*dim+i] = sin
	return m, nil
}

// MulVec multiplies m by v: out[i] = Σ m[i][j]·v[j].
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if len(v) != m.Dim {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"vector length %d does not match matrix dimension %d", len(v), m.Dim)
	}
	out := make(Vector, m.Dim)
	for i := 0; i < m.Dim; i++ {
		row := i * m.Dim
		sum := 0.0
		for j := 0; j < m.Dim; j++ {
			sum += m.Data[row+j] * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Mul multiplies two square matrices: out = m × n.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if m.Dim != n.Dim {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput,
			"matrix dimensions %d and %d do not match", m.Dim, n.Dim)
	}
	d := m.Dim
	out := Matrix{Dim: d, Data: make([]float64, d*d)}
	for i := 0; i < d; i++ {
		row := i * d
		for j := 0; j < d; j++ {
			sum := 0.0
			for k := 0; k < d; k++ {
				sum += m.Data[row+k] * n.Data[k*d+j]
			}
			out.Data[row+j] = sum
		}
	}
	return out, nil
}

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.Data[i*m.Dim+j] }
