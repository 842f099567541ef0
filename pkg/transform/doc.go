// Package transform composes scale, rotation, shear, and translation over a
// vertex set in any dimension.
//
// # Overview
//
// [Apply] runs the fixed pipeline order: per-axis or uniform scale, rotation
// composed from named plane angles, shear matrices multiplied in insertion
// order, then a translation normalized to the target dimension. Input
// vertices are never mutated; the output is freshly allocated, so callers can
// memoize results keyed on [State.Fingerprint].
//
// # Errors
//
// A shear plane name that no dimension could satisfy fails the whole call
// with INVALID_PLANE. A plane that is well formed but out of range for the
// current dimension is skipped with a warning instead, matching the rest of
// the degraded-input behavior: the view keeps rendering when a control from
// a higher dimension is left behind after the dimension shrinks.
package transform
