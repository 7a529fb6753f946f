package wheel

import (
	"math"
	"slices"
	"testing"
)

func degreesOf(placements []LabelPlacement) []float64 {
	out := make([]float64, len(placements))
	for i, p := range placements {
		out[i] = p.AdjustedDegree
	}
	return out
}

func TestResolveIdempotentOnSeparatedInput(t *testing.T) {
	positions := []BodyPosition{
		{Name: "Sun", Degree: 10},
		{Name: "Moon", Degree: 100},
		{Name: "Mars", Degree: 200},
		{Name: "Saturn", Degree: 300},
	}

	placements := Resolve(positions, 8)

	for i, p := range placements {
		if p.AdjustedDegree != p.TrueDegree {
			t.Errorf("placement %d: adjusted %v != true %v on separated input", i, p.AdjustedDegree, p.TrueDegree)
		}
	}
}

func TestResolveTwoPassTrace(t *testing.T) {
	// Pinned half-deficit arithmetic for a tight cluster: [10 12 14] at a
	// minimum separation of 8 relaxes to [4.75 11.625 19.625] after the two
	// fixed passes. The first gap (6.875) stays under 8: residual overlap
	// in dense clusters is the documented behavior of the two-pass cap.
	positions := []BodyPosition{
		{Name: "Sun", Degree: 10},
		{Name: "Mercury", Degree: 12},
		{Name: "Venus", Degree: 14},
	}

	got := degreesOf(Resolve(positions, 8))
	want := []float64{4.75, 11.625, 19.625}

	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("adjusted[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestResolveWrapAroundPair(t *testing.T) {
	positions := []BodyPosition{
		{Name: "Sun", Degree: 2},
		{Name: "Moon", Degree: 180},
		{Name: "Saturn", Degree: 357},
	}

	placements := Resolve(positions, 10)

	// Wrap gap was (2+360)-357 = 5, deficit 5: Sun forward 2.5, Saturn
	// backward 2.5. Pass two finds everything separated.
	if got := placements[0].AdjustedDegree; !approxEqual(got, 4.5) {
		t.Errorf("first adjusted = %v, want 4.5", got)
	}
	if got := placements[2].AdjustedDegree; !approxEqual(got, 354.5) {
		t.Errorf("last adjusted = %v, want 354.5", got)
	}
	if got := placements[1].AdjustedDegree; !approxEqual(got, 180) {
		t.Errorf("middle adjusted = %v, want 180 untouched", got)
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	tests := []struct {
		name    string
		degrees []float64
		minSep  float64
	}{
		{name: "tight cluster", degrees: []float64{10, 12, 14, 16}, minSep: 8},
		{name: "duplicate degrees", degrees: []float64{90, 90, 90}, minSep: 8},
		{name: "cluster at wrap", degrees: []float64{1, 3, 358}, minSep: 10},
		{name: "spread", degrees: []float64{0, 60, 120, 180, 240, 300}, minSep: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions := make([]BodyPosition, len(tt.degrees))
			for i, d := range tt.degrees {
				positions[i] = BodyPosition{Name: string(rune('a' + i)), Degree: d}
			}

			adjusted := degreesOf(Resolve(positions, tt.minSep))
			if !slices.IsSorted(adjusted) {
				t.Errorf("adjusted degrees reordered: %v", adjusted)
			}
		})
	}
}

func TestResolveNeverMutatesInput(t *testing.T) {
	positions := []BodyPosition{
		{Name: "Sun", Degree: 10},
		{Name: "Mercury", Degree: 11},
	}

	Resolve(positions, 8)

	if positions[0].Degree != 10 || positions[1].Degree != 11 {
		t.Errorf("input mutated: %+v", positions)
	}
}

func TestResolveSmallInputs(t *testing.T) {
	if got := Resolve(nil, 8); len(got) != 0 {
		t.Errorf("Resolve(nil) = %v, want empty", got)
	}

	single := Resolve([]BodyPosition{{Name: "Sun", Degree: 42}}, 8)
	if len(single) != 1 || single[0].AdjustedDegree != 42 {
		t.Errorf("Resolve(single) = %+v, want untouched single", single)
	}
}

func TestResolveSeparatesModerateClusters(t *testing.T) {
	positions := []BodyPosition{
		{Name: "Sun", Degree: 100},
		{Name: "Mercury", Degree: 103},
		{Name: "Venus", Degree: 200},
	}

	placements := Resolve(positions, 6)

	gap := placements[1].AdjustedDegree - placements[0].AdjustedDegree
	if gap < 6-tolerance {
		t.Errorf("pair gap = %v, want >= 6", gap)
	}
	// The isolated body does not move.
	if placements[2].AdjustedDegree != 200 {
		t.Errorf("isolated body moved to %v", placements[2].AdjustedDegree)
	}
}

func TestResolveDeterministic(t *testing.T) {
	positions := []BodyPosition{
		{Name: "Sun", Degree: 10},
		{Name: "Moon", Degree: 12},
		{Name: "Mars", Degree: 14},
		{Name: "Venus", Degree: 350},
	}

	a := degreesOf(Resolve(positions, 8))
	b := degreesOf(Resolve(positions, 8))

	for i := range a {
		if math.Abs(a[i]-b[i]) != 0 {
			t.Fatalf("non-deterministic output: %v vs %v", a, b)
		}
	}
}
