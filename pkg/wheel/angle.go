package wheel

import "math"

// ToCartesian maps a polar position to a display point.
//
// The angle is in degrees with 0° pointing east (+x) and angles increasing
// counter-clockwise, the usual astrological convention. Display coordinates
// have Y growing downward, so the Y term is subtracted rather than added.
//
// ToCartesian is total: it is defined for every finite input and has no
// failure modes.
func ToCartesian(radius, angleDegrees, centerX, centerY float64) Point {
	rad := angleDegrees * math.Pi / 180
	return Point{
		X: centerX + radius*math.Cos(rad),
		Y: centerY - radius*math.Sin(rad),
	}
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// displayAngle converts an ecliptic longitude to a display angle for a
// wheel rotated by rotation degrees. With rotation = ascendant − 180 the
// Ascendant lands at 180° display, the left horizon point.
func displayAngle(longitude, rotation float64) float64 {
	return NormalizeDegrees(longitude - rotation)
}
