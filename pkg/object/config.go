package object

import "github.com/mdimension/mdim/pkg/errors"

// Root system kinds accepted by [Config.RootType].
const (
	RootTypeA  = "A"
	RootTypeD  = "D"
	RootTypeE8 = "E8"
)

// Config carries the family-specific generator knobs. The zero value is
// usable; unset fields fall back to the defaults below.
type Config struct {
	// RootType selects the root system kind: "A", "D", or "E8".
	// Root systems only.
	RootType string `json:"rootType,omitempty" toml:"root_type"`

	// Scale multiplies the normalized output. Must be positive.
	Scale float64 `json:"scale,omitempty" toml:"scale"`

	// Resolution is the samples per angular parameter for torus grids and
	// the samples per axis for the fractal lattice.
	Resolution int `json:"resolution,omitempty" toml:"resolution"`

	// Power is the fractal exponent.
	Power float64 `json:"power,omitempty" toml:"power"`

	// Iterations caps the fractal escape-time loop.
	Iterations int `json:"iterations,omitempty" toml:"iterations"`

	// Neighbors is the per-vertex edge count for KNN wiring of point clouds.
	Neighbors int `json:"neighbors,omitempty" toml:"neighbors"`

	// MaxVertices bounds combinatorial generators.
	MaxVertices int `json:"maxVertices,omitempty" toml:"max_vertices"`
}

// Generator defaults.
const (
	DefaultScale           = 1.0
	DefaultTorusResolution = 24
	DefaultFractalGrid     = 20
	DefaultPower           = 8.0
	DefaultIterations      = 12
	DefaultNeighbors       = 4
	DefaultMaxVertices     = 40000
)

// withDefaults fills unset fields. It never mutates the receiver.
func (c Config) withDefaults() Config {
	if c.RootType == "" {
		c.RootType = RootTypeA
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.Power == 0 {
		c.Power = DefaultPower
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.Neighbors == 0 {
		c.Neighbors = DefaultNeighbors
	}
	if c.MaxVertices == 0 {
		c.MaxVertices = DefaultMaxVertices
	}
	return c
}

// validate rejects structurally invalid configurations. Resolution is checked
// by the generators that use it, since the valid range differs per family.
func (c Config) validate() error {
	if err := errors.ValidateScale(c.Scale); err != nil {
		return err
	}
	if c.Iterations < 1 || c.Iterations > 1000 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must be in [1, 1000], got %d", c.Iterations)
	}
	if c.Neighbors < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "neighbors must be at least 1, got %d", c.Neighbors)
	}
	switch c.RootType {
	case RootTypeA, RootTypeD, RootTypeE8:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown root system type: %q", c.RootType)
	}
	return nil
}
