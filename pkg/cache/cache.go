// Package cache provides content-addressed caching for the geometry
// pipeline.
//
// # Overview
//
// Every pipeline stage is a pure function of its inputs, so results are
// cached under keys derived from those inputs: the object configuration for
// generation, the transform fingerprint for transformed vertices, and the
// output format for rendered artifacts. Backends share one interface:
//
//   - [FileCache]: on-disk entries for CLI usage
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: persistent cache backed by a MongoDB collection
//   - [NullCache]: disabled caching
//
// # Keys
//
// [Keyer] builds the stage keys. Keys embed a SHA-256 over the semantic
// inputs, so any configuration change invalidates naturally without explicit
// eviction. [ScopedKeyer] prefixes all keys for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per pipeline stage. Geometry and transform results are cheap
// to recompute but requested constantly; artifacts are the expensive end.
const (
	GeometryTTL  = 24 * time.Hour
	TransformTTL = 1 * time.Hour
	ArtifactTTL  = 7 * 24 * time.Hour
)

// GeometryKeyOpts carries the generator inputs that shape a geometry.
type GeometryKeyOpts struct {
	// ConfigFingerprint is a stable hash of the family configuration.
	ConfigFingerprint string
}

// TransformKeyOpts carries the transform inputs applied to a geometry.
type TransformKeyOpts struct {
	// StateFingerprint is a stable hash of the transform state.
	StateFingerprint string
}

// ArtifactKeyOpts carries the rendering inputs that shape an output file.
type ArtifactKeyOpts struct {
	// Format is the artifact kind: "json", "svg", "dot", "png".
	Format string

	// FacesVisible toggles face polygons in the artifact.
	FacesVisible bool

	// Distance is the projection distance baked into the artifact.
	Distance float64

	// Size is the canvas size for raster and vector outputs.
	Size int
}

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// GeometryKey keys a generated geometry by family, dimension, and
	// configuration.
	GeometryKey(objectType string, dimension int, opts GeometryKeyOpts) string

	// TransformKey keys transformed vertices by the source geometry's
	// content hash and the transform state.
	TransformKey(geometryHash string, opts TransformKeyOpts) string

	// ArtifactKey keys a rendered artifact by the transformed geometry's
	// content hash and the output options.
	ArtifactKey(transformHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: stage prefix plus a SHA-256 over
// the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GeometryKey generates a key for geometry caching.
func (k *DefaultKeyer) GeometryKey(objectType string, dimension int, opts GeometryKeyOpts) string {
	return hashKey("geometry", objectType, dimension, opts)
}

// TransformKey generates a key for transformed vertex caching.
func (k *DefaultKeyer) TransformKey(geometryHash string, opts TransformKeyOpts) string {
	return hashKey("transform", geometryHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(transformHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", transformHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
