package svg

// Style supplies the palette for a wheel rendering. Implementations are
// stateless value types so they can be shared across renders.
type Style interface {
	// Name identifies the style in CLI flags and cache keys.
	Name() string

	// Background is the viewport fill color.
	Background() string

	// RingStroke is the color of ring circles and dividers.
	RingStroke() string

	// TextFill is the color of glyphs, numerals and legend text.
	TextFill() string

	// ConnectorStroke is the color of true-to-adjusted connector lines.
	ConnectorStroke() string

	// AspectStroke returns the chord color for an aspect type. Unknown
	// types get a neutral fallback.
	AspectStroke(aspectType string) string
}

// Simple is a light palette with conventional aspect coloring: red for the
// hard aspects, blue and green for the soft ones.
type Simple struct{}

func (Simple) Name() string            { return "simple" }
func (Simple) Background() string      { return "#ffffff" }
func (Simple) RingStroke() string      { return "#333333" }
func (Simple) TextFill() string        { return "#111111" }
func (Simple) ConnectorStroke() string { return "#999999" }

func (Simple) AspectStroke(aspectType string) string {
	if c, ok := simpleAspectColors[aspectType]; ok {
		return c
	}
	return "#888888"
}

var simpleAspectColors = map[string]string{
	"conjunction": "#b8860b",
	"opposition":  "#c0392b",
	"square":      "#c0392b",
	"trine":       "#2471a3",
	"sextile":     "#1e8449",
	"quincunx":    "#7d3c98",
}

// Midnight is a dark palette for embedding on dark pages.
type Midnight struct{}

func (Midnight) Name() string            { return "midnight" }
func (Midnight) Background() string      { return "#101522" }
func (Midnight) RingStroke() string      { return "#c8d0e0" }
func (Midnight) TextFill() string        { return "#e8ecf4" }
func (Midnight) ConnectorStroke() string { return "#5a6478" }

func (Midnight) AspectStroke(aspectType string) string {
	if c, ok := midnightAspectColors[aspectType]; ok {
		return c
	}
	return "#8892a8"
}

var midnightAspectColors = map[string]string{
	"conjunction": "#e8c35a",
	"opposition":  "#e06c5a",
	"square":      "#e06c5a",
	"trine":       "#5aa8e0",
	"sextile":     "#5ae08c",
	"quincunx":    "#b98ce0",
}

// StyleByName resolves a style flag value. The second return is false for
// unknown names.
func StyleByName(name string) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple{}, true
	case "midnight":
		return Midnight{}, true
	}
	return nil, false
}
