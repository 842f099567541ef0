package rotation

import "github.com/mdimension/mdim/pkg/geom"

// Angle is a rotation angle (radians) applied in a named plane.
type Angle struct {
	Plane string  `json:"plane" toml:"plane"`
	Value float64 `json:"value" toml:"value"`
}

// Compose multiplies the given plane rotations into a single dim×dim matrix,
// applying them in slice order (accumulator = accumulator × rotation).
// Entries whose plane name does not parse, or whose axes do not fit the
// dimension, are skipped; an empty list yields the identity.
func Compose(dim int, angles []Angle) geom.Matrix {
	acc := geom.Identity(dim)

	for _, a := range angles {
		p, err := ParsePlane(a.Plane)
		if err != nil {
			continue
		}
		if p.J >= dim {
			continue
		}
		rot, err := geom.Rotation(dim, p.I, p.J, a.Value)
		if err != nil {
			continue
		}
		next, err := acc.Mul(rot)
		if err != nil {
			continue
		}
		acc = next
	}

	return acc
}
