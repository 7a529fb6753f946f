package wheel

import "github.com/lunaterra/chartwheel/pkg/chart"

// BuildChords produces one chord per aspect edge, connecting the two bodies'
// true angular positions on the inner ring.
//
// Edges referencing a body with a nil longitude are silently skipped. This
// is the one place partial data is tolerated locally rather than failing the
// whole wheel: a Mars–South Node square disappears when the node's longitude
// is unknown, while every other edge renders normally.
func BuildChords(edges []chart.Aspect, radius float64, center Point, rotation float64) []Chord {
	chords := make([]Chord, 0, len(edges))
	for _, e := range edges {
		if e.LongitudeA == nil || e.LongitudeB == nil {
			continue
		}
		chords = append(chords, Chord{
			BodyA: e.BodyA,
			BodyB: e.BodyB,
			Type:  e.Type,
			Line: Line{
				From: ToCartesian(radius, displayAngle(*e.LongitudeA, rotation), center.X, center.Y),
				To:   ToCartesian(radius, displayAngle(*e.LongitudeB, rotation), center.X, center.Y),
			},
		})
	}
	return chords
}
