package wheel

import (
	"cmp"
	"slices"
)

// BodyPosition is one label's input to collision resolution.
type BodyPosition struct {
	Name   string
	Degree float64
}

// DefaultMinSeparation is the minimum angular gap between adjacent labels.
// Seven degrees keeps planet glyphs readable at the default ring radii.
const DefaultMinSeparation = 7.0

// relaxationPasses caps the pairwise relaxation at exactly two sweeps.
//
// Two passes are kept as the reference behavior: a single sweep can reopen
// a gap previously closed by the wrap-around adjustment, and the second
// sweep stabilizes everything except pathological high-density clusters
// (five or more bodies inside a 40° arc). Those residual overlaps are a
// documented limitation, not fixed by more passes.
const relaxationPasses = 2

// Resolve spreads overlapping label angles apart until adjacent labels are
// at least minSeparation degrees apart, where achievable within the fixed
// pass budget.
//
// The input must contain only bodies with known degrees, each body at most
// once. Resolve never mutates positions; it returns fresh [LabelPlacement]
// records ordered by ascending true degree (ties broken by name for
// determinism).
//
// # Algorithm
//
//  1. Sort by degree ascending; initialize adjusted = degree for each.
//  2. Run exactly two relaxation passes. Each pass first treats the first
//     and last entries as angular neighbors across the 0°/360° boundary:
//     if (first + 360) − last is below minSeparation, both are pushed apart
//     by half the deficit (first forward, last backward). The pass then
//     walks consecutive pairs in sorted order, pushing each underseparated
//     pair apart by half its deficit (previous backward, current forward).
//  3. Emit placements pairing each true degree with its adjusted degree.
//
// Resolve has no failure modes: it always returns a best-effort placement,
// even when full separation could not be achieved within two passes. The
// output is a pure function of the sorted input: no randomness, no
// iteration beyond the fixed budget.
//
// Resolve is idempotent on already-separated input: when every pairwise gap
// (including the wrap-around pair) meets minSeparation, adjusted degrees
// equal true degrees. It also never reorders bodies: the sorted order of
// adjusted degrees matches the sorted order of the input degrees.
func Resolve(positions []BodyPosition, minSeparation float64) []LabelPlacement {
	placements := make([]LabelPlacement, len(positions))
	for i, p := range positions {
		placements[i] = LabelPlacement{
			Body:           p.Name,
			TrueDegree:     p.Degree,
			AdjustedDegree: p.Degree,
		}
	}

	slices.SortFunc(placements, func(a, b LabelPlacement) int {
		if c := cmp.Compare(a.TrueDegree, b.TrueDegree); c != 0 {
			return c
		}
		return cmp.Compare(a.Body, b.Body)
	})

	if len(placements) < 2 {
		return placements
	}

	for pass := 0; pass < relaxationPasses; pass++ {
		relaxWrapPair(placements, minSeparation)
		relaxAdjacentPairs(placements, minSeparation)
	}
	return placements
}

// relaxWrapPair separates the first and last placements across the 0°/360°
// boundary by half the deficit each.
func relaxWrapPair(placements []LabelPlacement, minSeparation float64) {
	first, last := &placements[0], &placements[len(placements)-1]
	gap := first.AdjustedDegree + 360 - last.AdjustedDegree
	if gap >= minSeparation {
		return
	}
	push := (minSeparation - gap) / 2
	first.AdjustedDegree += push
	last.AdjustedDegree -= push
}

// relaxAdjacentPairs walks consecutive pairs in sorted order, pushing each
// underseparated pair apart by half the deficit. Adjustments are applied in
// place, so a push propagates into the comparison with the next pair within
// the same sweep.
func relaxAdjacentPairs(placements []LabelPlacement, minSeparation float64) {
	for i := 1; i < len(placements); i++ {
		prev, curr := &placements[i-1], &placements[i]
		gap := curr.AdjustedDegree - prev.AdjustedDegree
		if gap >= minSeparation {
			continue
		}
		push := (minSeparation - gap) / 2
		prev.AdjustedDegree -= push
		curr.AdjustedDegree += push
	}
}
