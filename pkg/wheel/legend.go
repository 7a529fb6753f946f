package wheel

import (
	"fmt"
	"math"

	"github.com/lunaterra/chartwheel/pkg/chart"
)

// RetrogradeMark is appended to a body's legend text when it is retrograde.
const RetrogradeMark = "℞"

// signGlyphs maps sign names to their zodiac glyphs.
var signGlyphs = map[string]string{
	"Aries":       "♈",
	"Taurus":      "♉",
	"Gemini":      "♊",
	"Cancer":      "♋",
	"Leo":         "♌",
	"Virgo":       "♍",
	"Libra":       "♎",
	"Scorpio":     "♏",
	"Sagittarius": "♐",
	"Capricorn":   "♑",
	"Aquarius":    "♒",
	"Pisces":      "♓",
}

// bodyGlyphs maps body names to their planet glyphs.
var bodyGlyphs = map[string]string{
	"Sun":        "☉",
	"Moon":       "☽",
	"Mercury":    "☿",
	"Venus":      "♀",
	"Mars":       "♂",
	"Jupiter":    "♃",
	"Saturn":     "♄",
	"Uranus":     "♅",
	"Neptune":    "♆",
	"Pluto":      "♇",
	"North Node": "☊",
	"South Node": "☋",
	"Chiron":     "⚷",
	"Ascendant":  "Asc",
	"Midheaven":  "MC",
}

// aspectGlyphs maps aspect type names to their symbols.
var aspectGlyphs = map[string]string{
	"conjunction": "☌",
	"opposition":  "☍",
	"trine":       "△",
	"square":      "□",
	"sextile":     "⚹",
	"quincunx":    "⚻",
}

// SignGlyph returns the glyph for a sign name, or the name itself when no
// glyph is registered (unknown sidereal sign labels render as text).
func SignGlyph(sign string) string {
	if g, ok := signGlyphs[sign]; ok {
		return g
	}
	return sign
}

// BodyGlyphText returns the glyph for a body name, falling back to the name.
func BodyGlyphText(body string) string {
	if g, ok := bodyGlyphs[body]; ok {
		return g
	}
	return body
}

// AspectGlyph returns the symbol for an aspect type, falling back to the
// type name.
func AspectGlyph(aspectType string) string {
	if g, ok := aspectGlyphs[aspectType]; ok {
		return g
	}
	return aspectType
}

// LegendEntry is one line of the wheel legend: a glyph, the body name, and
// the formatted degree-in-sign position.
type LegendEntry struct {
	Glyph string `json:"glyph"`
	Body  string `json:"body"`
	Text  string `json:"text"`
}

// FormatDegree renders an ecliptic longitude as degree-in-sign text in the
// canonical 30° frame, e.g. 135.53 → "15°32′ Leo".
func FormatDegree(longitude float64) string {
	lon := NormalizeDegrees(longitude)
	signIdx := int(lon/30) % 12
	within := math.Mod(lon, 30)
	deg := int(within)
	min := int(math.Round((within - float64(deg)) * 60))
	if min == 60 {
		deg, min = deg+1, 0
	}
	// Rounding can carry past the sign boundary; roll into the next sign.
	if deg == 30 {
		deg = 0
		signIdx = (signIdx + 1) % 12
	}
	return fmt.Sprintf("%d°%02d′ %s", deg, min, SignNames[signIdx])
}

// BuildLegend produces one ordered legend entry per body with a known
// longitude, in the caller's body order. Bodies with unknown longitudes are
// listed with an em-dash position so the legend still accounts for them.
func BuildLegend(bodies []chart.Body) []LegendEntry {
	entries := make([]LegendEntry, 0, len(bodies))
	for _, b := range bodies {
		e := LegendEntry{Glyph: BodyGlyphText(b.Name), Body: b.Name}
		if b.Known() {
			e.Text = FormatDegree(*b.Longitude)
			if b.Retrograde {
				e.Text += " " + RetrogradeMark
			}
		} else {
			e.Text = "—"
		}
		entries = append(entries, e)
	}
	return entries
}
