package faces

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/mdimension/mdim/pkg/object"
)

// Face is an index cycle bounding one flat 2D facet.
type Face []int

// Options configures detection.
type Options struct {
	// Logger receives degradation warnings. Defaults to a discard logger.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// supported lists the families the detector handles. Everything else
// degrades to no faces.
var supported = map[object.Type]bool{
	object.TypeSimplex:       true,
	object.TypeHypercube:     true,
	object.TypeCrossPolytope: true,
	object.TypeDemihypercube: true,
	object.TypeRectified:     true,
	object.TypeTruncated:     true,
	object.TypeRootSystem:    true,
	object.TypeCliffordTorus: true,
	object.TypeNestedTorus:   true,
}

// Detect derives the faces of a geometry. It never fails: unsupported types,
// missing prerequisites, and internal errors all return an empty result with
// a warning.
func Detect(g *object.Geometry, opts Options) (result []Face) {
	opts.setDefaults()

	defer func() {
		if r := recover(); r != nil {
			opts.Logger.Warn("face detection failed, rendering without faces",
				"type", g.Type, "panic", r)
			result = nil
		}
	}()

	if !supported[g.Type] {
		opts.Logger.Warn("object type does not support faces", "type", g.Type)
		return nil
	}

	switch g.Type {
	case object.TypeCliffordTorus, object.TypeNestedTorus:
		props := g.Properties()
		if props == nil {
			opts.Logger.Warn("torus geometry missing metadata properties, skipping faces",
				"type", g.Type)
			return nil
		}
		res, ok := gridResolution(props)
		if !ok || res*res != len(g.Vertices) {
			opts.Logger.Warn("torus metadata does not match vertex grid, skipping faces",
				"type", g.Type, "vertices", len(g.Vertices))
			return nil
		}
		return gridQuads(res)

	case object.TypeRootSystem:
		if len(g.Edges) == 0 {
			opts.Logger.Warn("root system has no edges, skipping faces", "type", g.Type)
			return nil
		}
	}

	return cycleFaces(g)
}

// gridResolution reads the grid resolution out of torus metadata. JSON
// round-trips turn ints into float64, so both arrive here.
func gridResolution(props map[string]any) (int, bool) {
	switch v := props["resolution"].(type) {
	case int:
		return v, v > 0
	case float64:
		return int(v), v > 0 && v == float64(int(v))
	default:
		return 0, false
	}
}

// gridQuads cuts a res×res wraparound parameter grid into quads, one per
// grid cell, index = row*res + col.
func gridQuads(res int) []Face {
	quads := make([]Face, 0, res*res)
	for iu := 0; iu < res; iu++ {
		nu := (iu + 1) % res
		for iv := 0; iv < res; iv++ {
			nv := (iv + 1) % res
			quads = append(quads, Face{
				iu*res + iv,
				nu*res + iv,
				nu*res + nv,
				iu*res + nv,
			})
		}
	}
	sortFaces(quads)
	return quads
}

// sortFaces orders faces by minimum vertex index, then length, then
// lexicographically.
func sortFaces(faces []Face) {
	minIdx := func(f Face) int {
		m := f[0]
		for _, v := range f[1:] {
			if v < m {
				m = v
			}
		}
		return m
	}
	sort.Slice(faces, func(a, b int) bool {
		fa, fb := faces[a], faces[b]
		if ma, mb := minIdx(fa), minIdx(fb); ma != mb {
			return ma < mb
		}
		if len(fa) != len(fb) {
			return len(fa) < len(fb)
		}
		for i := range fa {
			if fa[i] != fb[i] {
				return fa[i] < fb[i]
			}
		}
		return false
	})
}
