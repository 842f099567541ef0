package transform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
	"github.com/mdimension/mdim/pkg/rotation"
)

// Options configures one pipeline invocation.
type Options struct {
	// Logger receives warnings for skipped shear planes. Defaults to a
	// discard logger.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Apply runs the transform pipeline over a vertex set:
//
//  1. scale every vertex by the per-axis or uniform factor
//  2. rotate by the composition of the state's plane angles
//  3. multiply the insertion-ordered shear accumulator
//  4. add the translation, normalized to the dimension
//
// The input slice is never mutated. Shear planes that are well formed but out
// of range for dim are skipped with a warning; structurally malformed plane
// names fail the call with INVALID_PLANE.
func Apply(dim int, vertices []geom.Vector, state State, opts Options) ([]geom.Vector, error) {
	opts.setDefaults()
	if dim < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "dimension must be at least 1, got %d", dim)
	}

	scaleMat, err := scaleMatrix(dim, state)
	if err != nil {
		return nil, err
	}
	rotMat := rotation.Compose(dim, state.Rotations)
	shearMat, err := shearMatrix(dim, state.Shears, opts.Logger)
	if err != nil {
		return nil, err
	}
	translation := NormalizeTranslation(dim, state.Translation)

	out := make([]geom.Vector, len(vertices))
	for i, v := range vertices {
		if len(v) != dim {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"vertex %d has length %d, want %d", i, len(v), dim)
		}
		scaled, err := scaleMat.MulVec(v)
		if err != nil {
			return nil, err
		}
		rotated, err := rotMat.MulVec(scaled)
		if err != nil {
			return nil, err
		}
		sheared, err := shearMat.MulVec(rotated)
		if err != nil {
			return nil, err
		}
		out[i] = sheared.Add(translation)
	}
	return out, nil
}

// scaleMatrix builds the diagonal scale matrix: per-axis override where
// present, otherwise the uniform factor (zero meaning 1).
func scaleMatrix(dim int, state State) (geom.Matrix, error) {
	uniform := state.UniformScale
	if uniform == 0 {
		uniform = 1
	}
	scales := make([]float64, dim)
	for i := range scales {
		if s, ok := state.AxisScales[i]; ok {
			scales[i] = s
		} else {
			scales[i] = uniform
		}
	}
	return geom.Scale(dim, scales)
}

// shearMatrix folds the shear entries into one accumulator, right-multiplying
// each elementary shear in insertion order so composition stays
// non-commutative exactly as configured.
func shearMatrix(dim int, shears []Shear, logger *log.Logger) (geom.Matrix, error) {
	acc := geom.Identity(dim)
	for _, sh := range shears {
		p, err := rotation.ParsePlane(sh.Plane)
		if err != nil {
			return geom.Matrix{}, err
		}
		if p.J >= dim {
			logger.Warn("shear plane out of range for dimension, skipping",
				"plane", sh.Plane, "dimension", dim)
			continue
		}
		elem, err := geom.Shear(dim, p.I, p.J, sh.Amount)
		if err != nil {
			return geom.Matrix{}, err
		}
		acc, err = acc.Mul(elem)
		if err != nil {
			return geom.Matrix{}, err
		}
	}
	return acc, nil
}

// NormalizeTranslation fits a translation vector to the dimension: input
// entries copy over up to dim, extras are dropped, missing entries are zero.
func NormalizeTranslation(dim int, translation []float64) geom.Vector {
	out := geom.NewVector(dim, 0)
	for i := 0; i < dim && i < len(translation); i++ {
		out[i] = translation[i]
	}
	return out
}
