package transform

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mdimension/mdim/pkg/rotation"
)

// Shear is one elementary shear: the named plane's first axis picks the
// sheared row, the second the contributing column.
type Shear struct {
	Plane  string  `json:"plane" toml:"plane"`
	Amount float64 `json:"amount" toml:"amount"`
}

// State is the full transform configuration for one frame. Shears is a slice
// rather than a map because composition is order-dependent: entries apply in
// insertion order exactly.
type State struct {
	// UniformScale is the default diagonal entry. Zero means 1.
	UniformScale float64 `json:"uniformScale,omitempty"`

	// AxisScales overrides the uniform scale per axis index.
	AxisScales map[int]float64 `json:"axisScales,omitempty"`

	// Shears apply after rotation, in order.
	Shears []Shear `json:"shears,omitempty"`

	// Rotations are the per-plane angles composed into the rotation step.
	Rotations []rotation.Angle `json:"rotations,omitempty"`

	// Translation is added last. Entries beyond the dimension are dropped,
	// missing entries are zero.
	Translation []float64 `json:"translation,omitempty"`
}

// Identity reports whether the state leaves vertices unchanged.
func (s State) Identity() bool {
	if s.UniformScale != 0 && s.UniformScale != 1 {
		return false
	}
	for _, v := range s.AxisScales {
		if v != 1 {
			return false
		}
	}
	for _, sh := range s.Shears {
		if sh.Amount != 0 {
			return false
		}
	}
	for _, r := range s.Rotations {
		if r.Value != 0 {
			return false
		}
	}
	for _, t := range s.Translation {
		if t != 0 {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable content hash of the state for memoization
// keys. Axis scale maps serialize in sorted key order under encoding/json,
// so equal states always hash equal.
func (s State) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		// State contains only plain data; Marshal cannot fail in practice.
		return "unhashable"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
