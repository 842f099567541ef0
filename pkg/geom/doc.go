// Package geom provides fixed-size vector and matrix types for N-dimensional
// geometry, together with the builders and products the transformation
// pipeline is made of.
//
// # Overview
//
// A [Vector] is an ordered sequence of float64 coordinates; a [Matrix] is a
// square row-major float64 array with an explicit dimension. Both are plain
// data: every operation is a pure function returning freshly allocated
// results, so callers can share and memoize values freely.
//
// Builders cover the linear maps the pipeline composes:
//
//   - [Identity]: the d×d identity
//   - [Scale]: diagonal matrix from per-axis factors
//   - [Shear]: identity plus a coupled pair of off-diagonal entries
//   - [Rotation]: plane rotation in the (i, j) coordinate plane
//
// # Errors
//
// Operations on mismatched dimensions fail with a structured INVALID_INPUT
// error from [github.com/mdimension/mdim/pkg/errors]. There are no silent
// broadcasts or truncations at this layer.
//
// # Precision
//
// All arithmetic is float64. Comparisons in callers should allow the usual
// 1e-9 tolerance; this package never rounds.
package geom
