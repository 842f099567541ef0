// Package faces derives polygonal 2D faces from a geometry's edge graph.
//
// # Overview
//
// [Detect] handles the polytope families, root systems, and torus grids.
// Polytope-like objects get a bounded cycle search: triangles from 3-cycles
// over the adjacency list, quads from chord-free 4-cycles that pass a
// Gram-Schmidt coplanarity test. Torus grids skip graph search entirely and
// cut their parameter grid into quads analytically, which is why they demand
// the grid resolution in metadata.
//
// Output ordering is deterministic: faces sort by their minimum vertex index,
// then by length, then lexicographically, so identical inputs always render
// identically.
//
// # Degradation
//
// Detect never fails. Unsupported object types, a root system without edges,
// a torus without metadata properties, and any internal panic all degrade to
// an empty result with a warning on the configured logger. The rendering
// layer treats "no faces" as wireframe-only and keeps going.
package faces
