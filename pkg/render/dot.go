package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mdimension/mdim/pkg/object"
)

// ToDOT converts a geometry's wireframe to Graphviz DOT format. Vertices
// become point nodes pinned at their projected 2D position (the projected z
// coordinate drops out), so a neato layout reproduces the view instead of
// inventing one. The resulting string renders with [RenderSVG] or
// [RenderPNG].
func ToDOT(g *object.Geometry, distance float64) string {
	projected := Project(g.Vertices, distance)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.06, color=\"#4060c0\"];\n")
	buf.WriteString("  edge [color=\"#8090b0\", penwidth=0.6];\n")
	buf.WriteString("\n")

	const posScale = 3.0
	for i, p := range projected {
		fmt.Fprintf(&buf, "  %d [pos=\"%.4f,%.4f!\"];\n", i, p[0]*posScale, p[1]*posScale)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT wireframe to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT wireframe to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
