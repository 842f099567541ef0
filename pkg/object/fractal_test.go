package object

import (
	"math"
	"testing"

	"github.com/mdimension/mdim/pkg/geom"
)

func TestGenerateFractal(t *testing.T) {
	g, err := GenerateFractal(3, Config{Resolution: 12, Iterations: 8})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Vertices) == 0 {
		t.Fatal("expected a non-empty point cloud")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("invalid geometry: %v", err)
	}

	escape, ok := g.Metadata["escape"].([]float64)
	if !ok {
		t.Fatal("missing escape values in metadata")
	}
	if len(escape) != len(g.Vertices) {
		t.Errorf("%d escape values for %d vertices", len(escape), len(g.Vertices))
	}
	for i, e := range escape {
		if e > fractalBailout {
			t.Errorf("kept point %d has escape radius %g beyond bailout", i, e)
		}
	}
}

func TestGenerateFractalDeterministic(t *testing.T) {
	cfg := Config{Resolution: 10, Iterations: 6}
	a, err := GenerateFractal(3, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateFractal(3, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Vertices), len(b.Vertices))
	}
	for i := range a.Vertices {
		for j := range a.Vertices[i] {
			if a.Vertices[i][j] != b.Vertices[i][j] {
				t.Fatalf("vertex %d differs between runs", i)
			}
		}
	}
}

func TestGenerateFractalGuards(t *testing.T) {
	if _, err := GenerateFractal(2, Config{}); err == nil {
		t.Error("dimension 2 should fail")
	}
	if _, err := GenerateFractal(3, Config{Resolution: 2}); err == nil {
		t.Error("resolution below 3 should fail")
	}
	if _, err := GenerateFractal(3, Config{Resolution: 100}); err == nil {
		t.Error("resolution above the fractal cap should fail")
	}
	if _, err := GenerateFractal(3, Config{Iterations: 5000}); err == nil {
		t.Error("iteration count above the cap should fail")
	}
}

func TestSphericalPowerOrigin(t *testing.T) {
	out := sphericalPower(geom.Vector{0, 0, 0}, 0, 8)
	for i, c := range out {
		if c != 0 {
			t.Errorf("power of origin: coordinate %d = %g, want 0", i, c)
		}
	}
}

func TestSphericalPowerSquaresRadius(t *testing.T) {
	z := geom.Vector{0.3, 0.4, 0.5}
	r := z.Magnitude()
	out := sphericalPower(z, r, 2)
	if got, want := out.Magnitude(), r*r; math.Abs(got-want) > 1e-9 {
		t.Errorf("|z^2| = %g, want %g", got, want)
	}
}
