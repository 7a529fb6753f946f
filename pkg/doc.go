// Package pkg provides the core libraries for chartwheel layout and
// rendering.
//
// # Overview
//
// Chartwheel turns calculated chart documents (bodies with ecliptic
// longitudes, aspect edges, house cusps) into circular wheel diagrams. The
// pkg directory is organized into five main areas:
//
//  1. [chart] - Input document types, JSON import/export, contract validation
//  2. [wheel] - The layout engine (rings, chords, label collision resolution)
//  3. [render] - Output surfaces (SVG wheel, aspect graph, format conversion)
//  4. [pipeline] - Orchestration (layout → render) with caching
//  5. [cache] - Pluggable byte caches (file, Redis, null)
//
// # Architecture
//
// The typical data flow through chartwheel:
//
//	Chart document (JSON)
//	         ↓
//	    [chart] package (decode + validate)
//	         ↓
//	    [wheel] package (geometry: rings, chords, labels)
//	         ↓
//	    [render/svg] / [render/aspectgraph] (output)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT artifacts
//
// # Quick Start
//
// Load a chart and render a wheel:
//
//	import (
//	    "github.com/lunaterra/chartwheel/pkg/chart"
//	    "github.com/lunaterra/chartwheel/pkg/render/svg"
//	    "github.com/lunaterra/chartwheel/pkg/wheel"
//	)
//
//	// 1. Load the chart document
//	c, _ := chart.ImportJSON("natal.json")
//
//	// 2. Compute the layout
//	layout := wheel.Build(c, wheel.Options{})
//
//	// 3. Render to SVG
//	data := svg.Render(layout, svg.WithLegend())
//
// The [pipeline] package wraps the same flow with caching and format
// conversion for the CLI and the HTTP server.
//
// [chart]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/chart
// [wheel]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/wheel
// [render]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/render/svg
// [render/aspectgraph]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/render/aspectgraph
// [pipeline]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/lunaterra/chartwheel/pkg/cache
package pkg
