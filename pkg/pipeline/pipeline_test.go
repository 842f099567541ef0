package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/mdimension/mdim/pkg/cache"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/render"
	"github.com/mdimension/mdim/pkg/rotation"
	"github.com/mdimension/mdim/pkg/transform"
)

func TestExecuteBasic(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(ctx, Options{
		ObjectType: "hypercube",
		Dimension:  4,
		Formats:    []string{FormatJSON, FormatSVG, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.VertexCount != 16 {
		t.Errorf("VertexCount = %d, want 16", result.Stats.VertexCount)
	}
	if result.Stats.EdgeCount != 32 {
		t.Errorf("EdgeCount = %d, want 32", result.Stats.EdgeCount)
	}
	if result.GeometryHash == "" || result.TransformHash == "" {
		t.Error("content hashes should be set")
	}
	if result.Mode != render.ModePolytope {
		t.Errorf("Mode = %s", result.Mode)
	}

	for _, format := range []string{FormatJSON, FormatSVG, FormatDOT} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("missing %s artifact", format)
		}
	}
	if !bytes.Contains(result.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact should contain an svg element")
	}
	if !bytes.Contains(result.Artifacts[FormatDOT], []byte("graph G {")) {
		t.Error("dot artifact should contain a graph header")
	}
}

func TestExecuteDefaultsToJSON(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		ObjectType: "simplex",
		Dimension:  3,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(result.Artifacts) != 1 || len(result.Artifacts[FormatJSON]) == 0 {
		t.Errorf("Artifacts = %v formats", len(result.Artifacts))
	}
}

func TestExecuteAppliesTransform(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	plain, err := r.Execute(ctx, Options{ObjectType: "hypercube", Dimension: 3})
	if err != nil {
		t.Fatal(err)
	}
	rotated, err := r.Execute(ctx, Options{
		ObjectType: "hypercube",
		Dimension:  3,
		Transform: transform.State{
			Rotations: []rotation.Angle{{Plane: "XY", Value: 0.5}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if plain.Geometry.Vertices[0][0] == rotated.Geometry.Vertices[0][0] {
		t.Error("rotation should move the first vertex")
	}
	if plain.GeometryHash != rotated.GeometryHash {
		t.Error("untransformed geometry hash should not depend on the transform")
	}
	if plain.TransformHash == rotated.TransformHash {
		t.Error("transform hash should depend on the transform")
	}
}

func TestExecuteFaces(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		ObjectType:   "hypercube",
		Dimension:    4,
		FacesVisible: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.FaceCount != 24 {
		t.Errorf("FaceCount = %d, want 24", result.Stats.FaceCount)
	}
	if len(result.Faces) != 24 {
		t.Errorf("Faces = %d", len(result.Faces))
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{
		ObjectType: "cross-polytope",
		Dimension:  4,
		Transform: transform.State{
			Rotations: []rotation.Angle{{Plane: "XW", Value: 0.3}},
		},
		Formats: []string{FormatSVG},
	}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.TransformHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.TransformHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the rendered one")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.GenerateHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run should recompute: %+v", third.CacheInfo)
	}
}

func TestExecuteValidation(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{
			name: "unknown object",
			opts: Options{ObjectType: "teapot", Dimension: 4},
			code: errors.ErrCodeInvalidObject,
		},
		{
			name: "dimension too small",
			opts: Options{ObjectType: "hypercube", Dimension: 1},
			code: errors.ErrCodeInvalidDimension,
		},
		{
			name: "bad format",
			opts: Options{ObjectType: "hypercube", Dimension: 3, Formats: []string{"gif"}},
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(ctx, tt.opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestIdentityTransformSkipsWork(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	g, err := r.Generate(ctx, Options{ObjectType: "simplex", Dimension: 4})
	if err != nil {
		t.Fatal(err)
	}
	transformed, hit, err := r.TransformWithCacheInfo(ctx, g, Options{ObjectType: "simplex", Dimension: 4})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("identity transform should not consult the cache")
	}
	if transformed != g {
		t.Error("identity transform should return the input geometry")
	}
}

func TestConfigChangesCacheKey(t *testing.T) {
	opts1 := Options{ObjectType: "clifford-torus", Dimension: 4}
	opts2 := opts1
	opts2.Config.Resolution = 12

	k := cache.NewDefaultKeyer()
	k1 := k.GeometryKey(opts1.ObjectType, opts1.Dimension, opts1.GeometryKeyOpts())
	k2 := k.GeometryKey(opts2.ObjectType, opts2.Dimension, opts2.GeometryKeyOpts())
	if k1 == k2 {
		t.Error("configuration changes should change the geometry key")
	}
}
