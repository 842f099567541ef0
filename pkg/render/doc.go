// Package render resolves render modes and turns geometries into viewable
// artifacts.
//
// # Overview
//
// [Resolve] maps an object type to its render strategy via the static
// capability registry, forcing "none" when a polytope has nothing to draw.
// [Project] folds N-dimensional vertices down to 3D with a perspective
// division, clamping the denominator so vertices near the projection plane
// never explode.
//
// Artifact writers build on those two: [ToDOT] emits the projected wireframe
// as a Graphviz graph with pinned positions, [SVG] draws it directly, and
// [WriteJSON] streams the full record for downstream tooling.
package render
