package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lunaterra/chartwheel/pkg/cache"
	"github.com/lunaterra/chartwheel/pkg/chart"
	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
	"github.com/lunaterra/chartwheel/pkg/render"
	"github.com/lunaterra/chartwheel/pkg/render/aspectgraph"
	"github.com/lunaterra/chartwheel/pkg/render/svg"
	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// pngScale is the raster scale factor for PNG conversion.
const pngScale = 2.0

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
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

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, c *chart.Chart, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if c == nil {
		return nil, cwerrors.New(cwerrors.ErrCodeInvalidChart, "nil chart")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.BodyCount = len(c.Bodies)
	result.Stats.AspectCount = len(c.Aspects)

	// Stage 1: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	if layoutData, err := json.Marshal(layout); err == nil {
		result.LayoutHash = cache.Hash(layoutData)
	}

	r.Logger.Info("computed layout",
		"renderable", layout.Renderable,
		"bodies", len(layout.Bodies),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, c, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.FormatList(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes the wheel layout with caching and
// returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, c *chart.Chart, opts Options) (wheel.WheelLayout, bool, error) {
	opts.SetLayoutDefaults()
	if err := ValidateMode(opts.Mode); err != nil {
		return wheel.WheelLayout{}, false, err
	}
	r.applyLogger(&opts)

	chartData, err := json.Marshal(c)
	if err != nil {
		return wheel.WheelLayout{}, false, cwerrors.Wrap(cwerrors.ErrCodeInvalidChart, err, "serialize chart for cache key")
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(chartData), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached wheel.WheelLayout
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	layout := wheel.Build(c, opts.WheelOptions())

	if data, err := json.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return layout, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, c *chart.Chart, opts Options) (wheel.WheelLayout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, c, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. The chart is needed for the DOT format, which renders the aspect
// network rather than the wheel geometry.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout wheel.WheelLayout, c *chart.Chart, opts Options) (map[string][]byte, bool, error) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if err := ValidateStyle(opts.Style); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.Refresh {
		allCached := true
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	rendered, err := r.renderAll(layout, c, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout wheel.WheelLayout, c *chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, c, opts)
	return artifacts, err
}

// renderAll produces every requested format. The wheel SVG is rendered at
// most once and reused for raster conversions.
func (r *Runner) renderAll(layout wheel.WheelLayout, c *chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svgData []byte
	if opts.NeedsSVG() {
		svgData = svg.Render(layout, svgRenderOpts(opts)...)
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[FormatSVG] = svgData

		case FormatPNG:
			data, err := render.ToPNG(svgData, pngScale)
			if err != nil {
				return nil, fmt.Errorf("convert png: %w", err)
			}
			artifacts[FormatPNG] = data

		case FormatPDF:
			data, err := render.ToPDF(svgData)
			if err != nil {
				return nil, fmt.Errorf("convert pdf: %w", err)
			}
			artifacts[FormatPDF] = data

		case FormatJSON:
			data, err := json.MarshalIndent(layout, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("serialize layout: %w", err)
			}
			artifacts[FormatJSON] = data

		case FormatDOT:
			if c == nil {
				return nil, cwerrors.New(cwerrors.ErrCodeInvalidInput, "dot format requires the chart document")
			}
			dot := aspectgraph.ToDOT(c, aspectgraph.Options{Detailed: opts.Detailed})
			artifacts[FormatDOT] = []byte(dot)
		}
	}
	return artifacts, nil
}

// svgRenderOpts maps pipeline options to SVG renderer options.
func svgRenderOpts(opts Options) []svg.Option {
	var renderOpts []svg.Option
	if style, ok := svg.StyleByName(opts.Style); ok {
		renderOpts = append(renderOpts, svg.WithStyle(style))
	}
	if opts.Legend {
		renderOpts = append(renderOpts, svg.WithLegend())
	}
	return renderOpts
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
