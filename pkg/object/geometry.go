package object

import (
	"fmt"
	"sort"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/geom"
)

// Type identifies an object family.
type Type string

// Object families.
const (
	TypeSimplex       Type = "simplex"
	TypeHypercube     Type = "hypercube"
	TypeCrossPolytope Type = "cross-polytope"
	TypeDemihypercube Type = "demihypercube"
	TypeRectified     Type = "rectified"
	TypeTruncated     Type = "truncated"
	TypeRootSystem    Type = "root-system"
	TypeCliffordTorus Type = "clifford-torus"
	TypeNestedTorus   Type = "nested-torus"
	TypeMandelbulb    Type = "mandelbulb"
)

// Types lists every object family in display order.
func Types() []Type {
	return []Type{
		TypeSimplex,
		TypeHypercube,
		TypeCrossPolytope,
		TypeDemihypercube,
		TypeRectified,
		TypeTruncated,
		TypeRootSystem,
		TypeCliffordTorus,
		TypeNestedTorus,
		TypeMandelbulb,
	}
}

// ParseType resolves a family name, failing with INVALID_OBJECT for anything
// unknown.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := capabilities[t]; !ok {
		return "", errors.New(errors.ErrCodeInvalidObject, "unknown object type: %q", s)
	}
	return t, nil
}

// Edge is an unordered vertex index pair stored with the smaller index first.
type Edge [2]int

// NewEdge builds an edge in canonical order.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Geometry is the canonical record for one object at one dimension: vertices,
// an edge set, optional face cycles, and family-specific metadata. Every
// vertex has length Dimension and every edge and face index references an
// existing vertex.
type Geometry struct {
	Dimension int            `json:"dimension" bson:"dimension"`
	Type      Type           `json:"type" bson:"type"`
	Vertices  []geom.Vector  `json:"vertices" bson:"vertices"`
	Edges     []Edge         `json:"edges" bson:"edges"`
	Faces     [][]int        `json:"faces,omitempty" bson:"faces,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Properties returns the metadata "properties" sub-map, or nil when absent.
func (g *Geometry) Properties() map[string]any {
	if g.Metadata == nil {
		return nil
	}
	props, _ := g.Metadata["properties"].(map[string]any)
	return props
}

// Validate checks the structural invariants of the record.
func (g *Geometry) Validate() error {
	if g.Dimension < 1 {
		return errors.New(errors.ErrCodeInvalidDimension, "dimension must be at least 1, got %d", g.Dimension)
	}
	for i, v := range g.Vertices {
		if len(v) != g.Dimension {
			return errors.New(errors.ErrCodeInvalidObject,
				"vertex %d has length %d, want %d", i, len(v), g.Dimension)
		}
	}
	n := len(g.Vertices)
	for _, e := range g.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return errors.New(errors.ErrCodeInvalidObject,
				"edge %v references a missing vertex (have %d vertices)", e, n)
		}
	}
	for i, f := range g.Faces {
		if len(f) < 3 {
			return errors.New(errors.ErrCodeInvalidObject, "face %d has %d vertices, want at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return errors.New(errors.ErrCodeInvalidObject,
					"face %d references missing vertex %d (have %d vertices)", i, idx, n)
			}
		}
	}
	return nil
}

// sortEdges orders an edge set by first index, then second. Generators call
// this so identical configurations yield byte-identical records.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}
		return edges[a][1] < edges[b][1]
	})
}

// String implements fmt.Stringer for log output.
func (g *Geometry) String() string {
	return fmt.Sprintf("%s(dim=%d, vertices=%d, edges=%d)", g.Type, g.Dimension, len(g.Vertices), len(g.Edges))
}
