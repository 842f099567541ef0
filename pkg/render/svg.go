package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mdimension/mdim/pkg/faces"
	"github.com/mdimension/mdim/pkg/object"
)

// SVGOptions configures the direct SVG wireframe writer.
type SVGOptions struct {
	// Size is the square canvas edge in pixels. Zero means 800.
	Size int

	// Distance is the projection distance. Zero means the default.
	Distance float64

	// Faces are drawn as translucent polygons behind the wireframe when set.
	Faces []faces.Face

	// Stroke and Fill override the default palette.
	Stroke string
	Fill   string
}

func (o *SVGOptions) setDefaults() {
	if o.Size == 0 {
		o.Size = 800
	}
	if o.Stroke == "" {
		o.Stroke = "#4060c0"
	}
	if o.Fill == "" {
		o.Fill = "#4060c0"
	}
}

// SVG draws the projected wireframe straight to SVG, without Graphviz in the
// loop: faces back to front by mean depth, then every edge as a line. The
// x/y of the projection map onto the canvas with a fixed margin.
func SVG(g *object.Geometry, opts SVGOptions) []byte {
	opts.setDefaults()
	projected := Project(g.Vertices, opts.Distance)

	size := float64(opts.Size)
	margin := size * 0.08
	half := size / 2
	// Projected coordinates live roughly in [-1, 1] at the default distance.
	span := (size - 2*margin) / 2

	toX := func(p Point3) float64 { return half + p[0]*span }
	toY := func(p Point3) float64 { return half - p[1]*span }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		opts.Size, opts.Size, opts.Size, opts.Size)

	if len(opts.Faces) > 0 && len(projected) > 0 {
		drawFaces(&buf, projected, opts, toX, toY)
	}

	for _, e := range g.Edges {
		if e[0] >= len(projected) || e[1] >= len(projected) {
			continue
		}
		a, b := projected[e[0]], projected[e[1]]
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			toX(a), toY(a), toX(b), toY(b), opts.Stroke)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func drawFaces(buf *bytes.Buffer, projected []Point3, opts SVGOptions, toX, toY func(Point3) float64) {
	type depthFace struct {
		face  faces.Face
		depth float64
	}
	ordered := make([]depthFace, 0, len(opts.Faces))
	for _, f := range opts.Faces {
		sum := 0.0
		valid := true
		for _, idx := range f {
			if idx < 0 || idx >= len(projected) {
				valid = false
				break
			}
			sum += projected[idx][2]
		}
		if !valid {
			continue
		}
		ordered = append(ordered, depthFace{face: f, depth: sum / float64(len(f))})
	}
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].depth < ordered[b].depth })

	for _, df := range ordered {
		buf.WriteString(`  <polygon points="`)
		for i, idx := range df.face {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.2f,%.2f", toX(projected[idx]), toY(projected[idx]))
		}
		fmt.Fprintf(buf, `" fill="%s" fill-opacity="0.12" stroke="none"/>`+"\n", opts.Fill)
	}
}
