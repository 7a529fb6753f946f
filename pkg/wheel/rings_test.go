package wheel

import (
	"math"
	"testing"

	"github.com/lunaterra/chartwheel/pkg/chart"
)

var testRadii = Radii{Zodiac: 280, House: 220, Aspect: 150}

func TestTropicalSegments(t *testing.T) {
	segs := TropicalSegments()

	if len(segs) != 12 {
		t.Fatalf("len = %d, want 12", len(segs))
	}
	if segs[0].Sign != "Aries" || segs[0].Start != 0 || segs[0].End != 30 {
		t.Errorf("first segment = %+v, want Aries 0-30", segs[0])
	}
	if segs[11].Sign != "Pisces" || segs[11].Start != 330 || segs[11].End != 0 {
		t.Errorf("last segment = %+v, want Pisces 330-0 (wrapped)", segs[11])
	}
}

func TestBuildRingsCounts(t *testing.T) {
	center := Point{X: 300, Y: 300}
	geo := BuildRings(TropicalSegments(), testRadii, center, 0)

	if len(geo.Circles) != 3 {
		t.Fatalf("circles = %d, want 3", len(geo.Circles))
	}
	if geo.Circles[0].Radius != 280 || geo.Circles[1].Radius != 220 || geo.Circles[2].Radius != 150 {
		t.Errorf("circle radii = %+v, want outer-to-inner 280/220/150", geo.Circles)
	}
	if len(geo.Dividers) != 12 {
		t.Errorf("dividers = %d, want 12", len(geo.Dividers))
	}
	if len(geo.SignGlyphs) != 12 {
		t.Errorf("sign glyphs = %d, want 12", len(geo.SignGlyphs))
	}
}

func TestBuildRingsDividerSpansSignBand(t *testing.T) {
	center := Point{X: 300, Y: 300}
	geo := BuildRings(TropicalSegments(), testRadii, center, 0)

	// The Aries divider at 0 degrees display lies on the +x axis, running
	// from the house ring to the zodiac ring.
	d := geo.Dividers[0]
	if !approxPoint(d.From, Point{X: 520, Y: 300}) {
		t.Errorf("divider inner endpoint = %+v, want {520 300}", d.From)
	}
	if !approxPoint(d.To, Point{X: 580, Y: 300}) {
		t.Errorf("divider outer endpoint = %+v, want {580 300}", d.To)
	}
}

// siderealCover is an unequal-width gap-free cover of the full circle,
// including a wrap-around final segment.
var siderealCover = []chart.Segment{
	{Sign: "Aries", Start: 15, End: 40},
	{Sign: "Taurus", Start: 40, End: 78},
	{Sign: "Gemini", Start: 78, End: 100},
	{Sign: "Cancer", Start: 100, End: 135},
	{Sign: "Leo", Start: 135, End: 160},
	{Sign: "Virgo", Start: 160, End: 198},
	{Sign: "Libra", Start: 198, End: 222},
	{Sign: "Scorpio", Start: 222, End: 255},
	{Sign: "Sagittarius", Start: 255, End: 285},
	{Sign: "Capricorn", Start: 285, End: 310},
	{Sign: "Aquarius", Start: 310, End: 340},
	{Sign: "Pisces", Start: 340, End: 15},
}

func TestBuildRingsSiderealMidpointsInsideSegments(t *testing.T) {
	center := Point{X: 300, Y: 300}
	geo := BuildRings(siderealCover, testRadii, center, 0)

	if len(geo.Dividers) != 12 || len(geo.SignGlyphs) != 12 {
		t.Fatalf("got %d dividers, %d glyphs, want 12 each", len(geo.Dividers), len(geo.SignGlyphs))
	}

	for i, seg := range siderealCover {
		mid := segmentMidpoint(seg)
		width := NormalizeDegrees(seg.End - seg.Start)
		offset := NormalizeDegrees(mid - seg.Start)
		if offset <= 0 || offset >= width {
			t.Errorf("segment %d (%s): midpoint %v outside (%v, %v)", i, seg.Sign, mid, seg.Start, seg.End)
		}
	}
}

func TestSegmentMidpointWrapAround(t *testing.T) {
	tests := []struct {
		name string
		seg  chart.Segment
		want float64
	}{
		{name: "plain", seg: chart.Segment{Start: 30, End: 60}, want: 45},
		{name: "wraps zero", seg: chart.Segment{Start: 350, End: 20}, want: 5},
		{name: "ends at zero", seg: chart.Segment{Start: 330, End: 0}, want: 345},
		{name: "degenerate", seg: chart.Segment{Start: 90, End: 90}, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentMidpoint(tt.seg); !approxEqual(got, tt.want) {
				t.Errorf("segmentMidpoint(%+v) = %v, want %v", tt.seg, got, tt.want)
			}
		})
	}
}

func TestBuildRingsRotationMovesDividers(t *testing.T) {
	center := Point{X: 300, Y: 300}
	unrotated := BuildRings(TropicalSegments(), testRadii, center, 0)
	rotated := BuildRings(TropicalSegments(), testRadii, center, 90)

	// Rotating the wheel by 90 degrees moves the 0-degree divider from the
	// +x axis to the -y direction on screen (display angle -90 points down).
	d := rotated.Dividers[0]
	if !approxPoint(d.To, Point{X: 300, Y: 580}) {
		t.Errorf("rotated divider endpoint = %+v, want {300 580}", d.To)
	}

	// Circles are rotation-invariant.
	for i := range unrotated.Circles {
		if unrotated.Circles[i] != rotated.Circles[i] {
			t.Errorf("circle %d changed under rotation", i)
		}
	}
}

func TestBuildRingsGlyphRadius(t *testing.T) {
	center := Point{X: 300, Y: 300}
	geo := BuildRings(TropicalSegments(), testRadii, center, 0)

	wantRadius := testRadii.House + signGlyphFraction*(testRadii.Zodiac-testRadii.House)
	for i, g := range geo.SignGlyphs {
		r := math.Hypot(g.At.X-center.X, g.At.Y-center.Y)
		if !approxEqual(r, wantRadius) {
			t.Errorf("glyph %d radius = %v, want %v", i, r, wantRadius)
		}
	}
}
