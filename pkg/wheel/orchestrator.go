package wheel

import "github.com/lunaterra/chartwheel/pkg/chart"

// Default wheel dimensions in user units.
const (
	DefaultSize         = 600.0 // square viewport edge
	defaultZodiacRadius = 280.0
	defaultHouseRadius  = 220.0
	defaultAspectRadius = 150.0
)

// Band fractions for glyph radii, measured from the inner edge of each band.
const (
	bodyGlyphFraction    = 0.55 // planets between aspect and house rings
	transitGlyphFraction = 0.25 // transits in the lower zodiac band
	houseNumberFraction  = 0.15 // house numerals just outside the aspect ring
)

// placeholderText is shown when the wheel cannot be oriented.
const placeholderText = "birth time unknown: wheel cannot be oriented without an Ascendant"

// Options configures wheel construction. The zero value is usable: it
// produces a tropical wheel at the default radii and label separation.
type Options struct {
	// Mode selects the zodiac frame. Defaults to ModeTropical.
	Mode Mode

	// Center of the wheel. Defaults to the middle of the default viewport.
	Center Point

	// Radii of the three rings, outermost first. Defaults apply when zero.
	Radii Radii

	// MinSeparation is the minimum angular gap between adjacent body
	// labels, in degrees. Defaults to DefaultMinSeparation.
	MinSeparation float64
}

// OptionsForSize returns Options whose rings scale proportionally to a
// square viewport with the given edge length. Non-positive sizes yield the
// defaults.
func OptionsForSize(size float64) Options {
	if size <= 0 {
		size = DefaultSize
	}
	zodiac := size/2 - viewMargin
	return Options{
		Center: Point{X: size / 2, Y: size / 2},
		Radii: Radii{
			Zodiac: zodiac,
			House:  zodiac * defaultHouseRadius / defaultZodiacRadius,
			Aspect: zodiac * defaultAspectRadius / defaultZodiacRadius,
		},
	}
}

func (o *Options) setDefaults() {
	if o.Mode == "" {
		o.Mode = ModeTropical
	}
	if o.Center == (Point{}) {
		o.Center = Point{X: DefaultSize / 2, Y: DefaultSize / 2}
	}
	if o.Radii == (Radii{}) {
		o.Radii = Radii{Zodiac: defaultZodiacRadius, House: defaultHouseRadius, Aspect: defaultAspectRadius}
	}
	if o.MinSeparation == 0 {
		o.MinSeparation = DefaultMinSeparation
	}
}

// Build assembles the complete layout for one (chart, mode) pair.
//
// The orchestrator has exactly two states. When the chart has no Ascendant,
// or the Ascendant's longitude is unknown, the wheel is unrenderable: Build
// returns a layout with Renderable false, a diagnostic placeholder, and zero
// geometry. The wheel fails closed rather than rendering partially, because
// without the Ascendant there is no rotation to orient any element.
//
// Otherwise the rotation is the Ascendant longitude minus 180, anchoring the
// Ascendant on the left horizon point, and Build composes ring geometry,
// aspect chords, collision-resolved body labels, house lines and numbers,
// optional transit labels, and the legend into one immutable WheelLayout.
//
// Bodies with nil longitudes are excluded from geometry entirely. A cusp
// count other than twelve omits the house ring and numerals but leaves the
// rest of the wheel untouched. Build performs no I/O and never fails.
func Build(c *chart.Chart, opts Options) WheelLayout {
	opts.setDefaults()

	layout := WheelLayout{
		Mode:   opts.Mode,
		Center: opts.Center,
		Radii:  opts.Radii,
	}

	asc, ok := c.Ascendant()
	if !ok || !asc.Known() {
		layout.Placeholder = placeholderText
		return layout
	}

	layout.Renderable = true
	layout.Rotation = *asc.Longitude - 180

	rings := BuildRings(wheelSegments(c, opts.Mode), opts.Radii, opts.Center, layout.Rotation)
	layout.Circles = rings.Circles
	layout.SignDividers = rings.Dividers
	layout.SignGlyphs = rings.SignGlyphs

	layout.Aspects = BuildChords(c.Aspects, opts.Radii.Aspect, opts.Center, layout.Rotation)

	bodyRadius := opts.Radii.Aspect + bodyGlyphFraction*(opts.Radii.House-opts.Radii.Aspect)
	layout.Bodies = placeBodies(c.Bodies, bodyRadius, opts, layout.Rotation)

	if len(c.Transits) > 0 {
		transitRadius := opts.Radii.House + transitGlyphFraction*(opts.Radii.Zodiac-opts.Radii.House)
		layout.Transits = placeBodies(c.Transits, transitRadius, opts, layout.Rotation)
	}

	if c.HasHouses() {
		layout.HouseLines, layout.HouseNumbers = buildHouses(c.Houses, opts, layout.Rotation)
	}

	layout.Legend = BuildLegend(c.Bodies)
	return layout
}

// wheelSegments selects the sign segment source for the mode. Sidereal
// wheels need twelve external boundary segments; when they are missing the
// canonical 30° frame is used so the wheel still renders a full sign ring.
func wheelSegments(c *chart.Chart, mode Mode) []chart.Segment {
	if mode == ModeSidereal && len(c.Segments) == len(SignNames) {
		return c.Segments
	}
	return TropicalSegments()
}

// placeBodies resolves label collisions for every body with a known
// longitude and converts the placements to display geometry. The connector
// runs from the body's true position on the inner ring to the adjusted
// glyph anchor.
func placeBodies(bodies []chart.Body, glyphRadius float64, opts Options, rotation float64) []BodyGlyph {
	positions := make([]BodyPosition, 0, len(bodies))
	retro := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if !b.Known() {
			continue
		}
		positions = append(positions, BodyPosition{Name: b.Name, Degree: *b.Longitude})
		retro[b.Name] = b.Retrograde
	}

	placements := Resolve(positions, opts.MinSeparation)

	glyphs := make([]BodyGlyph, len(placements))
	for i, p := range placements {
		trueAngle := displayAngle(p.TrueDegree, rotation)
		adjAngle := displayAngle(p.AdjustedDegree, rotation)
		glyphs[i] = BodyGlyph{
			Placement:  p,
			Retrograde: retro[p.Body],
			Glyph: Glyph{
				Text: BodyGlyphText(p.Body),
				At:   ToCartesian(glyphRadius, adjAngle, opts.Center.X, opts.Center.Y),
			},
			Connector: Line{
				From: ToCartesian(opts.Radii.Aspect, trueAngle, opts.Center.X, opts.Center.Y),
				To:   ToCartesian(glyphRadius, adjAngle, opts.Center.X, opts.Center.Y),
			},
		}
	}
	return glyphs
}

// buildHouses produces one cusp line per house plus a numeral at the
// angular midpoint between consecutive cusps (wrap-aware). Called only with
// exactly twelve cusps.
func buildHouses(cusps []float64, opts Options, rotation float64) ([]Line, []HouseNumber) {
	lines := make([]Line, len(cusps))
	numbers := make([]HouseNumber, len(cusps))
	numberRadius := opts.Radii.Aspect + houseNumberFraction*(opts.Radii.House-opts.Radii.Aspect)

	for i, cusp := range cusps {
		angle := displayAngle(cusp, rotation)
		lines[i] = Line{
			From: ToCartesian(opts.Radii.Aspect, angle, opts.Center.X, opts.Center.Y),
			To:   ToCartesian(opts.Radii.House, angle, opts.Center.X, opts.Center.Y),
		}

		next := cusps[(i+1)%len(cusps)]
		width := NormalizeDegrees(next - cusp)
		mid := displayAngle(cusp+width/2, rotation)
		numbers[i] = HouseNumber{
			House: i + 1,
			Glyph: Glyph{
				Text: houseNumerals[i],
				At:   ToCartesian(numberRadius, mid, opts.Center.X, opts.Center.Y),
			},
		}
	}
	return lines, numbers
}

var houseNumerals = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
