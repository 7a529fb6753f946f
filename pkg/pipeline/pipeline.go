// Package pipeline provides the core chart-to-artifact pipeline for
// chartwheel.
//
// This package implements the complete layout → render pipeline that can be
// used by CLI and server components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute wheel geometry from the chart document
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Mode:    "tropical",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, chart, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lunaterra/chartwheel/pkg/cache"
	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// Default values shared by CLI and server.
const (
	// DefaultSize is the default square viewport edge in user units.
	DefaultSize = wheel.DefaultSize

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultMode is the default zodiac mode.
	DefaultMode = string(wheel.ModeTropical)
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats. FormatJSON is the
// serialized layout; FormatDOT is the aspect network as a Graphviz document.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"simple":   true,
	"midnight": true,
}

// Options contains all configuration for the wheel pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Mode          string  `json:"mode,omitempty"`
	Size          float64 `json:"size,omitempty"`
	MinSeparation float64 `json:"min_separation,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Legend   bool     `json:"legend,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Degree positions on DOT node labels
	Refresh  bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed wheel geometry.
	Layout wheel.WheelLayout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BodyCount   int
	AspectCount int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return cwerrors.New(cwerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
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

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return cwerrors.New(cwerrors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, midnight)", style)
	}
	return nil
}

// ValidateMode checks that a zodiac mode is valid.
func ValidateMode(mode string) error {
	if !wheel.ValidModes[wheel.Mode(mode)] {
		return cwerrors.New(cwerrors.ErrCodeInvalidMode,
			"invalid mode: %q (must be one of: tropical, sidereal)", mode)
	}
	return nil
}

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.SetLayoutDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}

	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.MinSeparation == 0 {
		o.MinSeparation = wheel.DefaultMinSeparation
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsSVG reports whether any requested format is derived from the wheel
// SVG (png and pdf are conversions of it).
func (o *Options) NeedsSVG() bool {
	for _, f := range o.Formats {
		switch f {
		case FormatSVG, FormatPNG, FormatPDF:
			return true
		}
	}
	return false
}

// FormatList returns the formats as a comma-separated string for logging.
func (o *Options) FormatList() string {
	return strings.Join(o.Formats, ",")
}

// WheelOptions converts pipeline options to layout engine options.
func (o *Options) WheelOptions() wheel.Options {
	wo := wheel.OptionsForSize(o.Size)
	wo.Mode = wheel.Mode(o.Mode)
	wo.MinSeparation = o.MinSeparation
	return wo
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:          o.Mode,
		Size:          o.Size,
		MinSeparation: o.MinSeparation,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Legend: o.Legend,
	}
}
