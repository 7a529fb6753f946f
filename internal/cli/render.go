package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunaterra/chartwheel/pkg/chart"
	"github.com/lunaterra/chartwheel/pkg/pipeline"
	"github.com/lunaterra/chartwheel/pkg/render/aspectgraph"
)

// renderOpts holds the command-line flags for the render command.
// These options control zodiac mode, wheel geometry, and output formats.
type renderOpts struct {
	output        string   // output file path (or base path for multiple formats)
	formats       []string // output formats: "svg", "pdf", "png", "json", "dot"
	mode          string   // zodiac mode: "tropical" or "sidereal"
	style         string   // visual style: "simple" or "midnight"
	size          float64  // square viewport edge in user units
	minSeparation float64  // minimum angular gap between body labels, degrees
	legend        bool     // append a legend block below the wheel
	detailed      bool     // degree positions on aspect-graph node labels
	transits      string   // chart file whose bodies overlay as transits
	aspectGraph   bool     // additionally render the aspect network as SVG
	refresh       bool     // bypass the cache and recompute
	noCache       bool     // disable caching entirely
}

// newRenderCmd creates the render command for generating wheel diagrams.
// It supports multiple output formats (SVG, PDF, PNG, JSON, DOT) and an
// optional aspect-network companion diagram.
//
// Defaults come from the config file: style, viewport size, and label
// separation fall back to the [wheel] section when the flags are unset.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [chart.json]",
		Short: "Render a chart document as a wheel diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "zodiac mode: tropical (default), sidereal")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), midnight")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "viewport edge length in user units")
	cmd.Flags().Float64Var(&opts.minSeparation, "min-separation", 0, "minimum angular gap between body labels (degrees)")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "append a legend below the wheel")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show degree positions in the aspect graph")
	cmd.Flags().StringVar(&opts.transits, "transits", "", "chart file whose bodies overlay as transits")
	cmd.Flags().BoolVar(&opts.aspectGraph, "aspect-graph", false, "also render the aspect network as SVG")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., natal.svg, natal.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the chart, executes the pipeline, and writes every
// requested artifact next to the input (or at --output).
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	logger.Infof("Rendering %s", input)

	c, err := chart.ImportJSON(input)
	if err != nil {
		return err
	}
	if err := chart.Validate(c); err != nil {
		return err
	}
	logger.Infof("Loaded chart: %d bodies, %d aspects", len(c.Bodies), len(c.Aspects))

	if opts.transits != "" {
		tc, err := chart.ImportJSON(opts.transits)
		if err != nil {
			return fmt.Errorf("transits: %w", err)
		}
		c.Transits = tc.Bodies
		logger.Infof("Overlaying %d transit bodies", len(tc.Bodies))
	}

	// Config file fills in whatever the flags left unset.
	if opts.style == "" {
		opts.style = cfg.Wheel.Style
	}
	if opts.size == 0 {
		opts.size = cfg.Wheel.Size
	}
	if opts.minSeparation == 0 {
		opts.minSeparation = cfg.Wheel.MinSeparation
	}

	store, err := openCache(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	runner := pipeline.NewRunner(store, nil, logger)
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Mode:          opts.mode,
		Size:          opts.size,
		MinSeparation: opts.minSeparation,
		Formats:       opts.formats,
		Style:         opts.style,
		Legend:        opts.legend,
		Detailed:      opts.detailed,
		Refresh:       opts.refresh,
		Logger:        logger,
	}

	p := newProgress(logger)
	result, err := runner.Execute(ctx, c, pipeOpts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

	if !result.Layout.Renderable {
		printWarning("chart has no Ascendant; rendered the placeholder instead of a wheel")
	}

	base := basePath(opts.output, input)
	cached := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	printStats(len(c.Bodies), len(c.Aspects), cached)

	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	if opts.aspectGraph {
		if err := renderAspectGraph(ctx, c, base, opts.detailed); err != nil {
			return err
		}
	}

	printSuccess("Done")
	return nil
}

// renderAspectGraph renders the chart's aspect network to <base>_aspects.svg
// using Graphviz. Layout can take a moment on dense charts, hence the spinner.
func renderAspectGraph(ctx context.Context, c *chart.Chart, base string, detailed bool) error {
	dot := aspectgraph.ToDOT(c, aspectgraph.Options{Detailed: detailed})

	sp := newSpinnerWithContext(ctx, "Laying out aspect graph")
	sp.Start()
	data, err := aspectgraph.RenderSVG(ctx, dot)
	sp.Stop()
	if err != nil {
		if sp.Cancelled() {
			return ctx.Err()
		}
		return fmt.Errorf("aspect graph: %w", err)
	}

	path := base + "_aspects.svg"
	if err := writeArtifact(path, data); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// writeArtifact writes data to path, creating parent directories as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
