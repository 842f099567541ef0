// Package pipeline provides the core geometry pipeline for mdim.
//
// This package implements the complete generate → transform → render pipeline
// that can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build the vertex/edge geometry for an object family
//  2. Transform: Apply the scale/rotate/shear/translate state to the vertices
//  3. Render: Project and emit output in various formats (JSON, SVG, DOT, PNG)
//
// Face detection runs between transform and render when requested; faces are
// derived from connectivity, so they survive any linear transform unchanged.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ObjectType: "hypercube",
//	    Dimension:  4,
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mdimension/mdim/pkg/cache"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/faces"
	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/render"
	"github.com/mdimension/mdim/pkg/transform"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// DefaultSize is the default artifact canvas edge in pixels.
const DefaultSize = 800

// Options contains all configuration for the geometry pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	ObjectType string        `json:"object_type"`
	Dimension  int           `json:"dimension"`
	Config     object.Config `json:"config,omitempty"`
	Refresh    bool          `json:"refresh,omitempty"`

	// Transform options
	Transform transform.State `json:"transform,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Distance     float64  `json:"distance,omitempty"`
	FacesVisible bool     `json:"faces_visible,omitempty"`
	Size         int      `json:"size,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	// parsedType caches the result of type validation.
	parsedType object.Type `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Geometry is the transformed geometry.
	Geometry *object.Geometry

	// GeometryHash is the content hash of the untransformed geometry.
	GeometryHash string

	// TransformHash is the content hash of the transformed geometry.
	TransformHash string

	// Faces holds the detected face polygons, nil unless requested.
	Faces []faces.Face

	// Mode is the resolved render mode.
	Mode render.Mode

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount   int
	EdgeCount     int
	FaceCount     int
	GenerateTime  time.Duration
	TransformTime time.Duration
	FacesTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit  bool // Whether the geometry came from cache
	TransformHit bool // Whether the transformed vertices came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for geometry generation.
func (o *Options) ValidateForGenerate() error {
	t, err := object.ParseType(o.ObjectType)
	if err != nil {
		return err
	}
	o.parsedType = t

	c, _ := object.Lookup(t)
	if err := errors.ValidateDimension(o.Dimension, c.MinDimension); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Distance == 0 {
		o.Distance = render.DefaultProjectionDistance
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Type returns the parsed object type. Valid after ValidateForGenerate.
func (o *Options) Type() object.Type {
	return o.parsedType
}

// GeometryKeyOpts returns cache key options for geometry generation.
func (o *Options) GeometryKeyOpts() cache.GeometryKeyOpts {
	return cache.GeometryKeyOpts{
		ConfigFingerprint: configFingerprint(o.Config),
	}
}

// TransformKeyOpts returns cache key options for the transform stage.
func (o *Options) TransformKeyOpts() cache.TransformKeyOpts {
	return cache.TransformKeyOpts{
		StateFingerprint: o.Transform.Fingerprint(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		FacesVisible: o.FacesVisible,
		Distance:     o.Distance,
		Size:         o.Size,
	}
}

// configFingerprint hashes the generator configuration for cache keys.
func configFingerprint(cfg object.Config) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "unhashable"
	}
	return cache.Hash(data)
}
