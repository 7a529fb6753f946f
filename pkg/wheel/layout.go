package wheel

// Point is a 2-D display coordinate in user units (typically SVG pixels).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a straight segment between two display points.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Circle is a ring boundary centered on the wheel.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Glyph is a positioned text glyph. Coordinates are pre-rotated, so the
// glyph is drawn upright at its anchor with no further transform.
type Glyph struct {
	Text string `json:"text"`
	At   Point  `json:"at"`
}

// Chord connects two aspected bodies across the inner ring.
// Type carries the aspect name (e.g. "trine") for styling.
type Chord struct {
	BodyA string `json:"body_a"`
	BodyB string `json:"body_b"`
	Type  string `json:"type"`
	Line  Line   `json:"line"`
}

// LabelPlacement records where a body's label ended up after collision
// resolution. TrueDegree is the body's actual ecliptic longitude;
// AdjustedDegree is the angle used for the glyph so neighbors don't overlap.
type LabelPlacement struct {
	Body           string  `json:"body"`
	TrueDegree     float64 `json:"true_degree"`
	AdjustedDegree float64 `json:"adjusted_degree"`
}

// BodyGlyph pairs a resolved label placement with its display geometry.
// Connector runs from the body's true position on the inner ring to the
// adjusted glyph anchor, so dense clusters remain readable.
type BodyGlyph struct {
	Placement  LabelPlacement `json:"placement"`
	Glyph      Glyph          `json:"glyph"`
	Retrograde bool           `json:"retrograde,omitempty"`
	Connector  Line           `json:"connector"`
}

// HouseNumber places a house's numeral near the inner ring.
type HouseNumber struct {
	House int   `json:"house"`
	Glyph Glyph `json:"glyph"`
}

// Radii holds the three concentric ring radii, outermost first.
type Radii struct {
	Zodiac float64 `json:"zodiac"` // outer ring, sign band
	House  float64 `json:"house"`  // middle ring, house band
	Aspect float64 `json:"aspect"` // inner ring, aspect core
}

// WheelLayout is the complete laid-out wheel for one (chart, zodiac mode)
// pair. It is immutable once built: builders return fresh slices and never
// alias caller data.
//
// When Renderable is false the wheel could not be oriented (no Ascendant)
// and every geometry slice is empty; Placeholder holds the diagnostic text
// a renderer should show instead.
type WheelLayout struct {
	Renderable  bool   `json:"renderable"`
	Placeholder string `json:"placeholder,omitempty"`

	Mode     Mode    `json:"mode"`
	Center   Point   `json:"center"`
	Radii    Radii   `json:"radii"`
	Rotation float64 `json:"rotation"` // Ascendant longitude − 180

	Circles      []Circle      `json:"circles,omitempty"`
	SignDividers []Line        `json:"sign_dividers,omitempty"`
	SignGlyphs   []Glyph       `json:"sign_glyphs,omitempty"`
	HouseLines   []Line        `json:"house_lines,omitempty"`
	HouseNumbers []HouseNumber `json:"house_numbers,omitempty"`
	Bodies       []BodyGlyph   `json:"bodies,omitempty"`
	Transits     []BodyGlyph   `json:"transits,omitempty"`
	Aspects      []Chord       `json:"aspects,omitempty"`
	Legend       []LegendEntry `json:"legend,omitempty"`
}

// Size returns the square viewport edge that contains the outer ring with
// a small margin.
func (l WheelLayout) Size() float64 {
	return 2 * (l.Radii.Zodiac + viewMargin)
}

// viewMargin is the padding between the zodiac ring and the viewport edge.
const viewMargin = 20.0
