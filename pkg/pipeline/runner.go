package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mdimension/mdim/pkg/cache"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/faces"
	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/observability"
	"github.com/mdimension/mdim/pkg/render"
	"github.com/mdimension/mdim/pkg/transform"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → transform → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	g, generateHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.GenerateTime = time.Since(generateStart)
	result.CacheInfo.GenerateHit = generateHit

	if data, err := json.Marshal(g); err == nil {
		result.GeometryHash = cache.Hash(data)
	}

	r.Logger.Info("generated geometry",
		"object", opts.ObjectType,
		"dimension", opts.Dimension,
		"vertices", len(g.Vertices),
		"edges", len(g.Edges),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Transform
	transformStart := time.Now()
	transformed, transformHit, err := r.TransformWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Geometry = transformed
	result.Stats.TransformTime = time.Since(transformStart)
	result.Stats.VertexCount = len(transformed.Vertices)
	result.Stats.EdgeCount = len(transformed.Edges)
	result.CacheInfo.TransformHit = transformHit

	if data, err := json.Marshal(transformed); err == nil {
		result.TransformHash = cache.Hash(data)
	}

	r.Logger.Info("applied transform",
		"vertices", len(transformed.Vertices),
		"duration", result.Stats.TransformTime)

	// Face detection. Faces index into the vertex slice, so they are computed
	// once on the transformed geometry and shared by every artifact.
	if opts.FacesVisible {
		facesStart := time.Now()
		observability.Pipeline().OnFacesStart(ctx, opts.ObjectType, len(transformed.Edges))
		result.Faces = faces.Detect(transformed, faces.Options{Logger: opts.Logger})
		result.Stats.FacesTime = time.Since(facesStart)
		result.Stats.FaceCount = len(result.Faces)
		observability.Pipeline().OnFacesComplete(ctx, opts.ObjectType, len(result.Faces), result.Stats.FacesTime)

		r.Logger.Info("detected faces",
			"faces", len(result.Faces),
			"duration", result.Stats.FacesTime)
	}

	result.Mode = render.Resolve(opts.Type(), transformed, opts.FacesVisible)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, transformed, result.Faces, result.Mode, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds the geometry with caching and returns cache
// hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*object.Geometry, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.GeometryKey(opts.ObjectType, opts.Dimension, opts.GeometryKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var g object.Geometry
			if err := json.Unmarshal(data, &g); err == nil {
				observability.Cache().OnCacheHit(ctx, "geometry")
				return &g, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "geometry")
	}

	observability.Pipeline().OnGenerateStart(ctx, opts.ObjectType, opts.Dimension)
	start := time.Now()
	g, err := object.Generate(opts.Type(), opts.Dimension, opts.Config)
	vertexCount := 0
	if g != nil {
		vertexCount = len(g.Vertices)
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.ObjectType, opts.Dimension, vertexCount, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(g); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.GeometryTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "geometry", len(data))
		}
	}

	return g, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*object.Geometry, error) {
	g, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

// TransformWithCacheInfo applies the transform state with caching and
// returns cache hit info. The input geometry is never mutated; an identity
// state returns it unchanged, any other state returns a fresh copy.
func (r *Runner) TransformWithCacheInfo(ctx context.Context, g *object.Geometry, opts Options) (*object.Geometry, bool, error) {
	r.applyLogger(&opts)

	// Identity transforms skip the matrix work and the cache round-trip.
	if opts.Transform.Identity() {
		return g, false, nil
	}

	geometryData, err := json.Marshal(g)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize geometry for cache key")
	}
	geometryHash := cache.Hash(geometryData)
	cacheKey := r.Keyer.TransformKey(geometryHash, opts.TransformKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached object.Geometry
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "transform")
				return &cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "transform")
	}

	observability.Pipeline().OnTransformStart(ctx, len(g.Vertices))
	start := time.Now()
	vertices, err := transform.Apply(g.Dimension, g.Vertices, opts.Transform, transform.Options{Logger: opts.Logger})
	observability.Pipeline().OnTransformComplete(ctx, len(g.Vertices), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	transformed := &object.Geometry{
		Dimension: g.Dimension,
		Type:      g.Type,
		Vertices:  vertices,
		Edges:     g.Edges,
		Faces:     g.Faces,
		Metadata:  g.Metadata,
	}

	if data, err := json.Marshal(transformed); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TransformTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "transform", len(data))
		}
	}

	return transformed, false, nil
}

// Transform is a convenience wrapper that discards the cache hit info.
func (r *Runner) Transform(ctx context.Context, g *object.Geometry, opts Options) (*object.Geometry, error) {
	transformed, _, err := r.TransformWithCacheInfo(ctx, g, opts)
	return transformed, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *object.Geometry, detected []faces.Face, mode render.Mode, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	geometryData, err := json.Marshal(g)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize geometry for cache key")
	}
	transformHash := cache.Hash(geometryData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(transformHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := r.renderFormats(ctx, g, detected, mode, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(transformHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *object.Geometry, detected []faces.Face, mode render.Mode, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, detected, mode, opts)
	return artifacts, err
}

// renderFormats builds every requested artifact from the transformed
// geometry.
func (r *Runner) renderFormats(ctx context.Context, g *object.Geometry, detected []faces.Face, mode render.Mode, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var faceArg []faces.Face
	if opts.FacesVisible {
		faceArg = detected
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			var buf bytes.Buffer
			rec := render.Record{
				Geometry:   g,
				Faces:      faceArg,
				Projection: render.Project(g.Vertices, opts.Distance),
				Mode:       mode,
			}
			if err := render.WriteJSON(&buf, rec); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json artifact")
			}
			artifacts[format] = buf.Bytes()

		case FormatSVG:
			artifacts[format] = render.SVG(g, render.SVGOptions{
				Size:     opts.Size,
				Distance: opts.Distance,
				Faces:    faceArg,
			})

		case FormatDOT:
			artifacts[format] = []byte(render.ToDOT(g, opts.Distance))

		case FormatPNG:
			data, err := render.RenderPNG(ctx, render.ToDOT(g, opts.Distance))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png artifact")
			}
			artifacts[format] = data
		}
	}

	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
