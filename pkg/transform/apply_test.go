package transform

import (
	"math"
	"testing"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
	"github.com/mdimension/mdim/pkg/rotation"
)

const tol = 1e-9

func vecsEqual(a, b []geom.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestApplyIdentity(t *testing.T) {
	vertices := []geom.Vector{
		{1, 2, 3},
		{-0.5, 0, 0.25},
	}
	out, err := Apply(3, vertices, State{}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !vecsEqual(out, vertices) {
		t.Errorf("identity transform changed vertices: %v -> %v", vertices, out)
	}

	// Output is freshly allocated, not aliased.
	out[0][0] = 99
	if vertices[0][0] != 1 {
		t.Error("Apply mutated its input")
	}
}

func TestApplyUniformScale(t *testing.T) {
	vertices := []geom.Vector{{1, -2, 3}}
	out, err := Apply(3, vertices, State{UniformScale: 2}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Vector{{2, -4, 6}}
	if !vecsEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestApplyAxisScaleOverride(t *testing.T) {
	vertices := []geom.Vector{{1, 1, 1}}
	state := State{
		UniformScale: 2,
		AxisScales:   map[int]float64{1: 5},
	}
	out, err := Apply(3, vertices, state, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Vector{{2, 5, 2}}
	if !vecsEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestApplyRotationPreservesLength(t *testing.T) {
	vertices := []geom.Vector{{1, 2, 3, 4}}
	state := State{Rotations: []rotation.Angle{
		{Plane: "XY", Value: 0.8},
		{Plane: "ZW", Value: 1.3},
	}}
	out, err := Apply(4, vertices, state, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out[0].Magnitude(), vertices[0].Magnitude(); math.Abs(got-want) > tol {
		t.Errorf("rotation changed length: %g -> %g", want, got)
	}
}

func TestApplyShearOrderSensitivity(t *testing.T) {
	vertices := []geom.Vector{{1, 1, 1}}

	ab := State{Shears: []Shear{{Plane: "XY", Amount: 1}, {Plane: "XZ", Amount: 1}}}
	ba := State{Shears: []Shear{{Plane: "XZ", Amount: 1}, {Plane: "XY", Amount: 1}}}

	outAB, err := Apply(3, vertices, ab, Options{})
	if err != nil {
		t.Fatal(err)
	}
	outBA, err := Apply(3, vertices, ba, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if vecsEqual(outAB, outBA) {
		t.Errorf("shear composition should be order-dependent, both gave %v", outAB)
	}
}

func TestApplyShearSkipsOutOfRangePlane(t *testing.T) {
	vertices := []geom.Vector{{1, 1, 1}}

	// "ZW" needs dimension 4; in 3D only the "XY" entry applies.
	with := State{Shears: []Shear{{Plane: "ZW", Amount: 2}, {Plane: "XY", Amount: 0.5}}}
	only := State{Shears: []Shear{{Plane: "XY", Amount: 0.5}}}

	outWith, err := Apply(3, vertices, with, Options{})
	if err != nil {
		t.Fatal(err)
	}
	outOnly, err := Apply(3, vertices, only, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !vecsEqual(outWith, outOnly) {
		t.Errorf("out-of-range shear plane should be skipped: %v vs %v", outWith, outOnly)
	}
}

func TestApplyMalformedShearPlane(t *testing.T) {
	_, err := Apply(3, []geom.Vector{{0, 0, 0}}, State{
		Shears: []Shear{{Plane: "notaplane", Amount: 1}},
	}, Options{})
	if err == nil {
		t.Fatal("malformed shear plane should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidPlane {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidPlane)
	}
}

func TestNormalizeTranslation(t *testing.T) {
	tests := []struct {
		dim   int
		input []float64
		want  []float64
	}{
		{3, []float64{1, 2, 3, 4}, []float64{1, 2, 3}}, // extras dropped
		{4, []float64{1, 2}, []float64{1, 2, 0, 0}},    // missing entries zero
		{2, nil, []float64{0, 0}},
	}
	for _, tt := range tests {
		got := NormalizeTranslation(tt.dim, tt.input)
		if len(got) != tt.dim {
			t.Fatalf("NormalizeTranslation(%d, %v) length %d", tt.dim, tt.input, len(got))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("NormalizeTranslation(%d, %v) = %v, want %v", tt.dim, tt.input, got, tt.want)
				break
			}
		}
	}
}

func TestApplyTranslation(t *testing.T) {
	vertices := []geom.Vector{{0, 0, 0}}
	state := State{Translation: []float64{1, 2, 3, 4}}
	out, err := Apply(3, vertices, state, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Vector{{1, 2, 3}}
	if !vecsEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestStateFingerprint(t *testing.T) {
	a := State{UniformScale: 2, Translation: []float64{1, 2}}
	b := State{UniformScale: 2, Translation: []float64{1, 2}}
	c := State{UniformScale: 3, Translation: []float64{1, 2}}

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal states should fingerprint equal")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different states should fingerprint different")
	}
}

func TestStateIdentity(t *testing.T) {
	if !(State{}).Identity() {
		t.Error("zero state should be identity")
	}
	if !(State{UniformScale: 1}).Identity() {
		t.Error("uniform scale 1 should be identity")
	}
	if (State{UniformScale: 2}).Identity() {
		t.Error("uniform scale 2 is not identity")
	}
	if (State{Translation: []float64{0, 1}}).Identity() {
		t.Error("non-zero translation is not identity")
	}
}
