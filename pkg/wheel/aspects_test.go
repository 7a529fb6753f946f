package wheel

import (
	"testing"

	"github.com/lunaterra/chartwheel/pkg/chart"
)

func degPtr(d float64) *float64 { return &d }

func TestBuildChords(t *testing.T) {
	center := Point{X: 300, Y: 300}
	edges := []chart.Aspect{
		{BodyA: "Sun", BodyB: "Moon", LongitudeA: degPtr(0), LongitudeB: degPtr(180), Type: "opposition"},
		{BodyA: "Mars", BodyB: "Venus", LongitudeA: degPtr(90), LongitudeB: degPtr(180), Type: "square"},
	}

	chords := BuildChords(edges, 150, center, 0)

	if len(chords) != 2 {
		t.Fatalf("chords = %d, want 2", len(chords))
	}

	opp := chords[0]
	if opp.Type != "opposition" || opp.BodyA != "Sun" || opp.BodyB != "Moon" {
		t.Errorf("chord tags = %+v", opp)
	}
	if !approxPoint(opp.Line.From, Point{X: 450, Y: 300}) {
		t.Errorf("chord from = %+v, want {450 300}", opp.Line.From)
	}
	if !approxPoint(opp.Line.To, Point{X: 150, Y: 300}) {
		t.Errorf("chord to = %+v, want {150 300}", opp.Line.To)
	}
}

func TestBuildChordsSkipsNilLongitudes(t *testing.T) {
	center := Point{X: 300, Y: 300}
	edges := []chart.Aspect{
		{BodyA: "Mars", BodyB: "South Node", LongitudeA: degPtr(90), LongitudeB: nil, Type: "square"},
		{BodyA: "Sun", BodyB: "Jupiter", LongitudeA: nil, LongitudeB: degPtr(120), Type: "trine"},
		{BodyA: "Sun", BodyB: "Moon", LongitudeA: degPtr(10), LongitudeB: degPtr(70), Type: "sextile"},
	}

	chords := BuildChords(edges, 150, center, 0)

	if len(chords) != 1 {
		t.Fatalf("chords = %d, want 1 (nil-longitude edges dropped)", len(chords))
	}
	if chords[0].Type != "sextile" {
		t.Errorf("surviving chord = %+v, want the sextile", chords[0])
	}
}

func TestBuildChordsEmpty(t *testing.T) {
	if got := BuildChords(nil, 150, Point{}, 0); len(got) != 0 {
		t.Errorf("BuildChords(nil) = %v, want empty", got)
	}
}

func TestBuildChordsAppliesRotation(t *testing.T) {
	center := Point{X: 300, Y: 300}
	edges := []chart.Aspect{
		{BodyA: "Sun", BodyB: "Moon", LongitudeA: degPtr(90), LongitudeB: degPtr(270), Type: "opposition"},
	}

	// Rotation 90 maps longitude 90 to display angle 0 (east).
	chords := BuildChords(edges, 150, center, 90)
	if !approxPoint(chords[0].Line.From, Point{X: 450, Y: 300}) {
		t.Errorf("rotated chord from = %+v, want {450 300}", chords[0].Line.From)
	}
}
