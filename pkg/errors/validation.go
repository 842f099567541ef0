package errors

import (
	"regexp"
	"strings"
)

// Boundary validation helpers. These guard user-facing entry points (CLI
// flags, scene files, HTTP query parameters) so the pure geometry functions
// can assume structurally sane inputs.

// MaxDimension caps the ambient dimension accepted at the boundary. Vertex
// counts grow combinatorially with dimension (a hypercube has 2^d vertices),
// so anything beyond this cannot meet the interactive frame budget.
const MaxDimension = 11

// ValidateDimension validates an ambient dimension against a family minimum.
func ValidateDimension(dim, min int) error {
	if dim < min {
		return New(ErrCodeInvalidDimension, "dimension too small: %d (minimum %d)", dim, min)
	}
	if dim > MaxDimension {
		return New(ErrCodeInvalidDimension, "dimension too large: %d (maximum %d)", dim, MaxDimension)
	}
	return nil
}

// planeNameRegex matches structurally valid rotation plane names: two axis
// labels, each either a single letter X/Y/Z/W/V/U or an indexed label A6, A7, ...
var planeNameRegex = regexp.MustCompile(`^([XYZWVU]|A[0-9]+)([XYZWVU]|A[0-9]+)$`)

// ValidatePlaneName validates the structure of a rotation plane name.
// It does not check that the named axes fit a particular dimension; that is a
// per-call concern handled (and silently skipped) by the transform pipeline.
func ValidatePlaneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlane, "plane name cannot be empty")
	}
	if !planeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPlane, "malformed plane name: %q", name)
	}
	return nil
}

// ValidateScale validates a scale factor. Zero and negative scales collapse
// or mirror the object; both are rejected at the boundary.
func ValidateScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidInput, "scale must be positive, got %g", scale)
	}
	return nil
}

// ValidateResolution validates a tessellation resolution (torus families).
func ValidateResolution(res int) error {
	if res < 3 {
		return New(ErrCodeInvalidConfig, "resolution too small: %d (minimum 3)", res)
	}
	if res > 256 {
		return New(ErrCodeInvalidConfig, "resolution too large: %d (maximum 256)", res)
	}
	return nil
}

// ValidateIterations validates a fractal iteration count.
func ValidateIterations(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "iterations must be at least 1, got %d", n)
	}
	if n > 1000 {
		return New(ErrCodeInvalidConfig, "iterations too large: %d (maximum 1000)", n)
	}
	return nil
}

// ValidateSceneName validates a scene file name for safety.
// It ensures the name is a simple basename without path components.
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidScene, "scene name cannot contain path separators")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidScene, "scene name cannot be a hidden file")
	}
	return nil
}
