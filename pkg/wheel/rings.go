package wheel

import "github.com/lunaterra/chartwheel/pkg/chart"

// Mode selects the zodiac reference frame for a wheel.
type Mode string

const (
	// ModeSidereal uses caller-supplied sign segments of unequal width.
	ModeSidereal Mode = "sidereal"

	// ModeTropical synthesizes twelve fixed 30° segments.
	ModeTropical Mode = "tropical"
)

// ValidModes is the set of supported zodiac modes.
var ValidModes = map[Mode]bool{
	ModeSidereal: true,
	ModeTropical: true,
}

// SignNames are the twelve zodiac signs in canonical order starting at 0°.
var SignNames = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// TropicalSegments returns the twelve fixed 30° sign segments in canonical
// order. The slice is freshly allocated on every call.
func TropicalSegments() []chart.Segment {
	segs := make([]chart.Segment, len(SignNames))
	for i, name := range SignNames {
		start := float64(i) * 30
		segs[i] = chart.Segment{Sign: name, Start: start, End: NormalizeDegrees(start + 30)}
	}
	return segs
}

// RingGeometry is the static frame of a wheel: three boundary circles, one
// radial divider per sign segment, and one sign glyph per segment midpoint.
type RingGeometry struct {
	Circles    []Circle
	Dividers   []Line
	SignGlyphs []Glyph
}

// signGlyphFraction places sign glyphs inside the zodiac band,
// measured from the house ring outward.
const signGlyphFraction = 0.5

// BuildRings produces the ring frame for a wheel rotated by rotation
// degrees. Segments may wrap through 0° (End numerically below Start);
// the glyph midpoint is computed on the wrapped width, so a segment from
// 350° to 20° gets its glyph at 5°.
//
// Both zodiac modes share this one code path: tropical wheels pass
// [TropicalSegments], sidereal wheels pass the external boundary segments.
func BuildRings(segments []chart.Segment, radii Radii, center Point, rotation float64) RingGeometry {
	geo := RingGeometry{
		Circles: []Circle{
			{Center: center, Radius: radii.Zodiac},
			{Center: center, Radius: radii.House},
			{Center: center, Radius: radii.Aspect},
		},
		Dividers:   make([]Line, 0, len(segments)),
		SignGlyphs: make([]Glyph, 0, len(segments)),
	}

	glyphRadius := radii.House + signGlyphFraction*(radii.Zodiac-radii.House)

	for _, seg := range segments {
		start := displayAngle(seg.Start, rotation)
		geo.Dividers = append(geo.Dividers, Line{
			From: ToCartesian(radii.House, start, center.X, center.Y),
			To:   ToCartesian(radii.Zodiac, start, center.X, center.Y),
		})

		mid := displayAngle(segmentMidpoint(seg), rotation)
		geo.SignGlyphs = append(geo.SignGlyphs, Glyph{
			Text: SignGlyph(seg.Sign),
			At:   ToCartesian(glyphRadius, mid, center.X, center.Y),
		})
	}
	return geo
}

// segmentMidpoint returns the angular midpoint of a segment, accounting for
// wrap-around when End < Start. A degenerate zero-width segment yields its
// start angle.
func segmentMidpoint(seg chart.Segment) float64 {
	width := NormalizeDegrees(seg.End - seg.Start)
	return NormalizeDegrees(seg.Start + width/2)
}
