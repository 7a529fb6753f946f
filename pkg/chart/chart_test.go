package chart

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
)

func degPtr(d float64) *float64 { return &d }

const sampleJSON = `{
  "bodies": [
    {"name": "Sun", "longitude": 135.5},
    {"name": "Moon", "longitude": 10.25, "retrograde": false},
    {"name": "Mercury", "longitude": 140.1, "retrograde": true},
    {"name": "South Node", "longitude": null},
    {"name": "Ascendant", "longitude": 275.0}
  ],
  "aspects": [
    {"body_a": "Sun", "body_b": "Moon", "longitude_a": 135.5, "longitude_b": 10.25, "type": "trine"}
  ],
  "houses": [275, 305, 335, 5, 35, 65, 95, 125, 155, 185, 215, 245],
  "segments": [
    {"sign": "Aries", "start": 15, "end": 45}
  ]
}`

func TestReadJSON(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if len(c.Bodies) != 5 {
		t.Errorf("bodies = %d, want 5", len(c.Bodies))
	}

	sun, ok := c.Body("Sun")
	if !ok || !sun.Known() || *sun.Longitude != 135.5 {
		t.Errorf("Sun = %+v, ok=%v", sun, ok)
	}

	node, ok := c.Body("South Node")
	if !ok || node.Known() {
		t.Errorf("South Node should be present with unknown longitude, got %+v", node)
	}

	asc, ok := c.Ascendant()
	if !ok || *asc.Longitude != 275 {
		t.Errorf("Ascendant = %+v, ok=%v", asc, ok)
	}

	if !c.HasHouses() {
		t.Error("HasHouses() = false for 12 cusps")
	}
}

func TestReadJSONRejectsMalformedShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "non-numeric degree", in: `{"bodies": [{"name": "Sun", "longitude": "abc"}]}`},
		{name: "unknown field", in: `{"bodies": [], "planets": []}`},
		{name: "truncated", in: `{"bodies": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadJSON accepted malformed input")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}

	if len(again.Bodies) != len(c.Bodies) || len(again.Houses) != len(c.Houses) {
		t.Errorf("round trip changed shape: %+v", again)
	}
	if again.Bodies[3].Known() {
		t.Error("nil longitude did not survive round trip")
	}
}

func TestImportExportFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "natal.json")

	c, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if err := ExportJSON(c, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got.Bodies) != 5 {
		t.Errorf("imported bodies = %d, want 5", len(got.Bodies))
	}

	if _, err := ImportJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ImportJSON succeeded on missing file")
	}
}

func TestHasHouses(t *testing.T) {
	tests := []struct {
		name  string
		cusps int
		want  bool
	}{
		{name: "twelve", cusps: 12, want: true},
		{name: "none", cusps: 0, want: false},
		{name: "eleven", cusps: 11, want: false},
		{name: "thirteen", cusps: 13, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Chart{Houses: make([]float64, tt.cusps)}
			if got := c.HasHouses(); got != tt.want {
				t.Errorf("HasHouses() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Chart {
		return &Chart{
			Bodies: []Body{
				{Name: "Sun", Longitude: degPtr(135.5)},
				{Name: "Ascendant", Longitude: degPtr(275)},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Chart)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Chart) {}, wantErr: false},
		{
			name:    "nil longitude tolerated",
			mutate:  func(c *Chart) { c.Bodies[0].Longitude = nil },
			wantErr: false,
		},
		{
			name:    "eleven cusps tolerated",
			mutate:  func(c *Chart) { c.Houses = make([]float64, 11) },
			wantErr: false,
		},
		{
			name:    "longitude out of range",
			mutate:  func(c *Chart) { c.Bodies[0].Longitude = degPtr(360) },
			wantErr: true,
		},
		{
			name:    "negative longitude",
			mutate:  func(c *Chart) { c.Bodies[0].Longitude = degPtr(-1) },
			wantErr: true,
		},
		{
			name:    "empty body name",
			mutate:  func(c *Chart) { c.Bodies[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "duplicate body",
			mutate:  func(c *Chart) { c.Bodies = append(c.Bodies, Body{Name: "Sun", Longitude: degPtr(10)}) },
			wantErr: true,
		},
		{
			name:    "no bodies",
			mutate:  func(c *Chart) { c.Bodies = nil },
			wantErr: true,
		},
		{
			name:    "aspect missing type",
			mutate:  func(c *Chart) { c.Aspects = []Aspect{{BodyA: "Sun", BodyB: "Moon"}} },
			wantErr: true,
		},
		{
			name:    "cusp out of range",
			mutate:  func(c *Chart) { c.Houses = []float64{400} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr && err != nil && !cwerrors.Is(err, cwerrors.ErrCodeInvalidChart) {
				t.Errorf("error code = %q, want INVALID_CHART", cwerrors.GetCode(err))
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) = nil, want error")
	}
}
