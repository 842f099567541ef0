package render

import "github.com/mdimension/mdim/pkg/object"

// Mode is the render strategy tag consumed by the rendering layer.
type Mode string

// Render modes. Raymarch modes are emitted for families whose surface is an
// implicit function; drawing them is the rendering layer's concern.
const (
	ModePolytope           Mode = "polytope"
	ModeRaymarchMandelbulb Mode = "raymarch-mandelbulb"
	ModeNone               Mode = "none"
)

// Resolve maps an object type to its render mode. The base mode comes from
// the capability registry; on top of that, a polytope with no vertices
// resolves to none since there is nothing to draw. No other overrides.
// facesVisible travels with the call so the registry's own rules can key on
// it; the core applies no post-processing based on it.
func Resolve(t object.Type, g *object.Geometry, facesVisible bool) Mode {
	c, ok := object.Lookup(t)
	if !ok {
		return ModeNone
	}
	mode := Mode(c.BaseMode)
	if mode == ModePolytope && (g == nil || len(g.Vertices) == 0) {
		return ModeNone
	}
	return mode
}
