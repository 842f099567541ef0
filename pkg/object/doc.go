// Package object defines the canonical geometry record and the generators
// that produce one per object family.
//
// # Overview
//
// A [Geometry] bundles vertices, an edge set, optional faces, and per-family
// metadata for one object at one dimension. Instances are produced fresh by
// a generator call and never mutated afterwards; a new dimension, type, or
// configuration yields a new instance, so callers can cache and share
// geometries by value identity.
//
// Generators are pure functions (dimension, Config) → *Geometry:
//
//   - [GenerateSimplex]: the regular d-simplex (d+1 vertices, complete graph)
//   - [GenerateHypercube]: 2^d vertices, one-bit-difference edges
//   - [GenerateCrossPolytope]: 2d vertices, all non-antipodal pairs
//   - [GenerateDemihypercube]: even-parity hypercube vertices
//   - [GenerateRectified], [GenerateTruncated]: hypercube variants
//   - [GenerateRootSystem]: A, D, and E8 root systems with short-edge wiring
//   - [GenerateCliffordTorus], [GenerateNestedTorus]: flat torus grids
//   - [GenerateFractal]: escape-time point cloud with KNN wireframe
//
// Every generator recenters its vertices on the centroid and normalizes the
// bounding box into [−1, 1] before applying the configured scale, so all
// families land in the same view volume.
//
// # Capabilities
//
// The static capability registry ([Lookup]) maps each object type to its
// minimum dimension, base render mode, and face support. It is resolved once
// at package initialization; there is no dynamic registration.
//
// # Errors
//
// A dimension below a family's minimum, or a structurally invalid
// configuration, fails with an INVALID_* error from
// [github.com/mdimension/mdim/pkg/errors]. Generators never panic on valid
// configurations.
package object
