package aspectgraph

import (
	"strings"
	"testing"

	"github.com/lunaterra/chartwheel/pkg/chart"
)

func degPtr(d float64) *float64 { return &d }

func testChart() *chart.Chart {
	return &chart.Chart{
		Bodies: []chart.Body{
			{Name: "Sun", Longitude: degPtr(135.5)},
			{Name: "Moon", Longitude: degPtr(10)},
			{Name: "Saturn", Longitude: degPtr(200)},
			{Name: "South Node", Longitude: nil},
		},
		Aspects: []chart.Aspect{
			{BodyA: "Sun", BodyB: "Moon", LongitudeA: degPtr(135.5), LongitudeB: degPtr(10), Type: "trine"},
			{BodyA: "Sun", BodyB: "South Node", LongitudeA: degPtr(135.5), LongitudeB: nil, Type: "square"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testChart(), Options{})

	if !strings.HasPrefix(dot, "graph aspects {") {
		t.Errorf("not an undirected graph: %.40s", dot)
	}
	if !strings.Contains(dot, `"Sun" -- "Moon" [label="△"]`) {
		t.Error("trine edge missing or unlabeled")
	}
	if strings.Contains(dot, "South Node") {
		t.Error("nil-longitude edge endpoint leaked into DOT")
	}
	if strings.Contains(dot, "Saturn") {
		t.Error("unaspected body should not appear")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testChart(), Options{Detailed: true})

	if !strings.Contains(dot, "15°30′ Leo") {
		t.Error("detailed label missing degree-in-sign text")
	}
}

func TestToDOTEmptyAspects(t *testing.T) {
	c := &chart.Chart{Bodies: []chart.Body{{Name: "Sun", Longitude: degPtr(1)}}}
	dot := ToDOT(c, Options{})

	if strings.Contains(dot, `"Sun"`) {
		t.Error("body without aspects should not appear")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("unterminated DOT document")
	}
}
