// Package svg renders a computed wheel layout as scalable vector graphics.
//
// The renderer walks the [wheel.WheelLayout] exactly once and emits circle,
// line and text primitives. It makes no layout decisions of its own: every
// coordinate comes from the engine, so two renders of the same layout are
// byte-identical.
//
// Basic usage:
//
//	data := svg.Render(layout,
//	    svg.WithStyle(svg.Midnight{}),
//	    svg.WithLegend(),
//	)
package svg

import (
	"bytes"
	"fmt"

	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// Option configures a render.
type Option func(*renderer)

type renderer struct {
	style      Style
	showLegend bool
}

// WithStyle selects the palette. Defaults to [Simple].
func WithStyle(s Style) Option { return func(r *renderer) { r.style = s } }

// WithLegend appends a legend block below the wheel.
func WithLegend() Option { return func(r *renderer) { r.showLegend = true } }

const (
	ringStrokeWidth    = 1.5
	dividerStrokeWidth = 1.0
	chordStrokeWidth   = 1.2
	glyphFontSize      = 16.0
	numeralFontSize    = 10.0
	legendFontSize     = 12.0
	legendLineHeight   = 18.0
	legendPadding      = 14.0
)

// Render produces the SVG document for a wheel layout.
//
// An unrenderable layout (missing Ascendant) yields a document containing
// only the diagnostic placeholder text, never partial geometry.
func Render(l wheel.WheelLayout, opts ...Option) []byte {
	r := renderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	size := l.Size()
	height := size
	if r.showLegend && l.Renderable {
		height += legendHeight(len(l.Legend))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, height, size, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.style.Background())

	if !l.Renderable {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0f" fill="%s">%s</text>`+"\n",
			size/2, size/2, legendFontSize, r.style.TextFill(), escape(l.Placeholder))
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	r.renderRings(&buf, l)
	r.renderHouses(&buf, l)
	r.renderChords(&buf, l)
	r.renderBodies(&buf, l.Bodies, "body")
	r.renderBodies(&buf, l.Transits, "transit")

	if r.showLegend {
		r.renderLegend(&buf, l, size)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderRings(buf *bytes.Buffer, l wheel.WheelLayout) {
	for _, c := range l.Circles {
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			c.Center.X, c.Center.Y, c.Radius, r.style.RingStroke(), ringStrokeWidth)
	}
	for _, d := range l.SignDividers {
		r.line(buf, d, r.style.RingStroke(), dividerStrokeWidth, "")
	}
	for _, g := range l.SignGlyphs {
		r.glyph(buf, g, glyphFontSize)
	}
}

func (r *renderer) renderHouses(buf *bytes.Buffer, l wheel.WheelLayout) {
	for _, h := range l.HouseLines {
		r.line(buf, h, r.style.RingStroke(), dividerStrokeWidth, "")
	}
	for _, n := range l.HouseNumbers {
		r.glyph(buf, n.Glyph, numeralFontSize)
	}
}

func (r *renderer) renderChords(buf *bytes.Buffer, l wheel.WheelLayout) {
	for _, c := range l.Aspects {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" class="aspect-%s"/>`+"\n",
			c.Line.From.X, c.Line.From.Y, c.Line.To.X, c.Line.To.Y,
			r.style.AspectStroke(c.Type), chordStrokeWidth, escape(c.Type))
	}
}

func (r *renderer) renderBodies(buf *bytes.Buffer, bodies []wheel.BodyGlyph, class string) {
	for _, b := range bodies {
		r.line(buf, b.Connector, r.style.ConnectorStroke(), dividerStrokeWidth, "stroke-dasharray=\"3,2\" ")
		text := b.Glyph.Text
		if b.Retrograde {
			text += wheel.RetrogradeMark
		}
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-size="%.0f" fill="%s" class="%s">%s</text>`+"\n",
			b.Glyph.At.X, b.Glyph.At.Y, glyphFontSize, r.style.TextFill(), class, escape(text))
	}
}

func (r *renderer) renderLegend(buf *bytes.Buffer, l wheel.WheelLayout, size float64) {
	y := size + legendPadding
	for _, e := range l.Legend {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" fill="%s">%s %s %s</text>`+"\n",
			legendPadding, y, legendFontSize, r.style.TextFill(),
			escape(e.Glyph), escape(e.Body), escape(e.Text))
		y += legendLineHeight
	}
}

func (r *renderer) line(buf *bytes.Buffer, ln wheel.Line, stroke string, width float64, extra string) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %sstroke="%s" stroke-width="%.1f"/>`+"\n",
		ln.From.X, ln.From.Y, ln.To.X, ln.To.Y, extra, stroke, width)
}

func (r *renderer) glyph(buf *bytes.Buffer, g wheel.Glyph, fontSize float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-size="%.0f" fill="%s">%s</text>`+"\n",
		g.At.X, g.At.Y, fontSize, r.style.TextFill(), escape(g.Text))
}

// legendHeight returns the extra viewport height the legend block needs.
func legendHeight(entries int) float64 {
	if entries == 0 {
		return 0
	}
	return legendPadding*2 + float64(entries)*legendLineHeight
}

// escape makes text safe for embedding in SVG element content.
func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
