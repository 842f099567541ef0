package object

// Capability describes what the rendering layer can do with a family.
// The table is static and resolved once at package initialization.
type Capability struct {
	// MinDimension is the smallest dimension the family's generator accepts.
	MinDimension int `json:"minDimension"`

	// BaseMode is the render strategy before any post-processing overrides:
	// "polytope" for wireframe/face rendering, "raymarch-<kind>" for
	// implicit surfaces, "none" when nothing can be drawn.
	BaseMode string `json:"baseMode"`

	// SupportsFaces reports whether the face detector handles the family.
	SupportsFaces bool `json:"supportsFaces"`

	// Description is a one-line label for UI listings.
	Description string `json:"description"`
}

var capabilities = map[Type]Capability{
	TypeSimplex: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Regular simplex, the N-dimensional tetrahedron",
	},
	TypeHypercube: {
		MinDimension:  2,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Hypercube with 2^d vertices",
	},
	TypeCrossPolytope: {
		MinDimension:  2,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Cross-polytope, the N-dimensional octahedron",
	},
	TypeDemihypercube: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Alternated hypercube with even-parity vertices",
	},
	TypeRectified: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Rectified hypercube, vertices at edge midpoints",
	},
	TypeTruncated: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Truncated hypercube with cut corners",
	},
	TypeRootSystem: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Lie-algebra root systems A, D, and E8",
	},
	TypeCliffordTorus: {
		MinDimension:  4,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Flat torus on the 3-sphere",
	},
	TypeNestedTorus: {
		MinDimension:  3,
		BaseMode:      "polytope",
		SupportsFaces: true,
		Description:   "Torus of revolution nested through higher axes",
	},
	TypeMandelbulb: {
		MinDimension:  3,
		BaseMode:      "raymarch-mandelbulb",
		SupportsFaces: false,
		Description:   "Escape-time mandelbulb point cloud",
	},
}

// Lookup returns the capability record for a family.
func Lookup(t Type) (Capability, bool) {
	c, ok := capabilities[t]
	return c, ok
}
