// Package chart defines the input document consumed by the wheel engine.
//
// A chart is the output of the external calculation service: named bodies
// with ecliptic longitudes, aspect edges between body pairs, twelve house
// cusps (when birth time is known), and, for sidereal charts, the twelve
// unequal sign segments. The package provides JSON import/export and the
// upstream contract validation described in [Validate].
package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// AscendantName is the body name that anchors wheel rotation.
const AscendantName = "Ascendant"

// HouseCount is the number of house cusps a well-formed chart carries.
const HouseCount = 12

// Body is one named point on the ecliptic (Sun…Pluto, nodes, angles).
// Longitude is nil when birth time is unknown; such bodies are excluded
// from wheel rendering entirely.
type Body struct {
	Name       string   `json:"name" validate:"required"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=0,lt=360"`
	Retrograde bool     `json:"retrograde,omitempty"`
}

// Known reports whether the body has a usable longitude.
func (b Body) Known() bool { return b.Longitude != nil }

// Aspect is a named angular relationship between two bodies. The longitudes
// are carried on the edge so chord geometry does not depend on body lookup.
type Aspect struct {
	BodyA      string   `json:"body_a" validate:"required"`
	BodyB      string   `json:"body_b" validate:"required"`
	LongitudeA *float64 `json:"longitude_a" validate:"omitempty,gte=0,lt=360"`
	LongitudeB *float64 `json:"longitude_b" validate:"omitempty,gte=0,lt=360"`
	Type       string   `json:"type" validate:"required"`
}

// Segment is one zodiac sign's angular span. Sidereal segments have unequal
// widths derived from an external boundary system; End may be numerically
// smaller than Start when the segment wraps through 0°.
type Segment struct {
	Sign  string  `json:"sign" validate:"required"`
	Start float64 `json:"start" validate:"gte=0,lt=360"`
	End   float64 `json:"end" validate:"gte=0,lt=360"`
}

// Chart is the complete input document for one wheel.
type Chart struct {
	// Bodies are the natal points. Nil longitudes are permitted per-body.
	Bodies []Body `json:"bodies" validate:"required,min=1,dive"`

	// Aspects are the registered angular relationships.
	Aspects []Aspect `json:"aspects,omitempty" validate:"dive"`

	// Houses holds the 12 cusp longitudes, index 0 = house 1 cusp.
	// Absent entirely when birth time is unknown.
	Houses []float64 `json:"houses,omitempty" validate:"dive,gte=0,lt=360"`

	// Segments are the sidereal sign boundaries. Ignored in tropical mode.
	Segments []Segment `json:"segments,omitempty" validate:"dive"`

	// Transits are an optional second body set laid out in the outer band.
	Transits []Body `json:"transits,omitempty" validate:"dive"`
}

// Body returns the named natal body, if present.
func (c *Chart) Body(name string) (Body, bool) {
	for _, b := range c.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// Ascendant returns the Ascendant body, if present.
func (c *Chart) Ascendant() (Body, bool) {
	return c.Body(AscendantName)
}

// HasHouses reports whether the chart carries exactly twelve cusps.
// Any other count is treated as malformed and the house ring is omitted
// from layouts; it is not an error.
func (c *Chart) HasHouses() bool { return len(c.Houses) == HouseCount }

// ReadJSON decodes a chart document from r.
//
// Decoding fails loudly on malformed input shapes (non-numeric degrees,
// unknown structure), since those indicate a contract violation by the
// calculation service. ReadJSON does not validate ranges; call [Validate]
// for the full contract check. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Chart, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var c Chart
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return &c, nil
}

// ImportJSON reads a chart document from the file at path.
func ImportJSON(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteJSON encodes the chart as indented JSON and writes it to w.
// The output round-trips through [ReadJSON].
func WriteJSON(c *Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return nil
}

// ExportJSON writes the chart to a JSON file at path.
func ExportJSON(c *Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
