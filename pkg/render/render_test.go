package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mdimension/mdim/pkg/faces"
	"github.com/mdimension/mdim/pkg/geom"
	"github.com/mdimension/mdim/pkg/object"
)

func TestResolvePolytope(t *testing.T) {
	g, err := object.GenerateHypercube(4, object.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if mode := Resolve(object.TypeHypercube, g, true); mode != ModePolytope {
		t.Errorf("mode = %q, want %q", mode, ModePolytope)
	}
}

func TestResolveEmptyPolytopeForcedToNone(t *testing.T) {
	empty := &object.Geometry{Dimension: 4, Type: object.TypeHypercube}
	for _, typ := range object.Types() {
		c, _ := object.Lookup(typ)
		if c.BaseMode != string(ModePolytope) {
			continue
		}
		for _, facesVisible := range []bool{true, false} {
			if mode := Resolve(typ, empty, facesVisible); mode != ModeNone {
				t.Errorf("Resolve(%s, empty, %v) = %q, want %q", typ, facesVisible, mode, ModeNone)
			}
		}
	}
	if mode := Resolve(object.TypeSimplex, nil, false); mode != ModeNone {
		t.Errorf("nil geometry should resolve to none, got %q", mode)
	}
}

func TestResolveRaymarchIgnoresEmptyVertices(t *testing.T) {
	// Raymarch modes draw an implicit surface; no vertices needed.
	empty := &object.Geometry{Dimension: 3, Type: object.TypeMandelbulb}
	if mode := Resolve(object.TypeMandelbulb, empty, false); mode != ModeRaymarchMandelbulb {
		t.Errorf("mode = %q, want %q", mode, ModeRaymarchMandelbulb)
	}
}

func TestResolveUnknownType(t *testing.T) {
	if mode := Resolve("teapot", nil, true); mode != ModeNone {
		t.Errorf("mode = %q, want %q", mode, ModeNone)
	}
}

func TestProjectPassThrough3D(t *testing.T) {
	vertices := []geom.Vector{{1, 2, 3}}
	out := Project(vertices, 4)
	if len(out) != 1 {
		t.Fatalf("%d points, want 1", len(out))
	}
	// No higher dimensions: depth 0, scale 1/4.
	want := Point3{0.25, 0.5, 0.75}
	for i := range want {
		if math.Abs(out[0][i]-want[i]) > 1e-9 {
			t.Errorf("out[0][%d] = %g, want %g", i, out[0][i], want[i])
		}
	}
}

func TestProjectDepthFolding(t *testing.T) {
	// 5D: two higher coordinates fold into depth (1+1)/√2 = √2.
	vertices := []geom.Vector{{1, 0, 0, 1, 1}}
	out := Project(vertices, 4)
	wantScale := 1 / (4 - math.Sqrt2)
	if math.Abs(out[0][0]-wantScale) > 1e-9 {
		t.Errorf("out[0][0] = %g, want %g", out[0][0], wantScale)
	}
}

func TestProjectClampsNearPlane(t *testing.T) {
	// Depth equals the projection distance: the denominator clamps instead
	// of dividing by zero.
	vertices := []geom.Vector{{1, 1, 1, 4}}
	out := Project(vertices, 4)
	for i, c := range out[0] {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			t.Fatalf("coordinate %d not finite: %g", i, c)
		}
	}
	if math.Abs(out[0][0]-1/minSafeDistance) > 1e-9 {
		t.Errorf("out[0][0] = %g, want %g", out[0][0], 1/minSafeDistance)
	}
}

func TestProjectDegenerate(t *testing.T) {
	if out := Project(nil, 4); out != nil {
		t.Errorf("no vertices should project to nil, got %v", out)
	}
	if out := Project([]geom.Vector{{1, 2}}, 4); out != nil {
		t.Errorf("2D vertices should project to nil, got %v", out)
	}
}

func TestToDOT(t *testing.T) {
	g, err := object.GenerateSimplex(3, object.Config{})
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, 0)
	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("unexpected DOT prefix: %q", dot[:20])
	}
	if !strings.Contains(dot, "layout=neato") {
		t.Error("DOT should pin positions with neato")
	}
	if !strings.Contains(dot, "0 -- 1;") {
		t.Error("DOT missing edges")
	}
	if strings.Count(dot, "pos=") != len(g.Vertices) {
		t.Errorf("DOT should pin every vertex, found %d of %d", strings.Count(dot, "pos="), len(g.Vertices))
	}
}

func TestSVGWireframe(t *testing.T) {
	g, err := object.GenerateHypercube(3, object.Config{})
	if err != nil {
		t.Fatal(err)
	}
	svg := SVG(g, SVGOptions{Size: 400})
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Fatal("output is not SVG")
	}
	if got := bytes.Count(svg, []byte("<line")); got != len(g.Edges) {
		t.Errorf("%d lines, want %d", got, len(g.Edges))
	}
	if bytes.Contains(svg, []byte("<polygon")) {
		t.Error("no faces requested, but polygons drawn")
	}
}

func TestSVGWithFaces(t *testing.T) {
	g, err := object.GenerateSimplex(3, object.Config{})
	if err != nil {
		t.Fatal(err)
	}
	fs := faces.Detect(g, faces.Options{})
	svg := SVG(g, SVGOptions{Size: 400, Faces: fs})
	if got := bytes.Count(svg, []byte("<polygon")); got != len(fs) {
		t.Errorf("%d polygons, want %d", got, len(fs))
	}
}

func TestWriteJSON(t *testing.T) {
	g, err := object.GenerateSimplex(3, object.Config{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = WriteJSON(&buf, Record{
		Geometry:   g,
		Projection: Project(g.Vertices, 0),
		Mode:       ModePolytope,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"geometry"`, `"projection"`, `"mode": "polytope"`, `"type": "simplex"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("JSON missing %s", want)
		}
	}
}
