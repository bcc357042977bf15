// Package units provides shared constants and conversions for angle units
// and display time zones.
package units

import "math"

// Angle unit constants
const (
	Degrees = "deg"
	Radians = "rad"
)

// ValidAngleUnits contains all accepted angle unit values
var ValidAngleUnits = []string{Degrees, Radians}

// IsValidAngleUnit checks if the given unit is an accepted angle unit
func IsValidAngleUnit(unit string) bool {
	for _, valid := range ValidAngleUnits {
		if unit == valid {
			return true
		}
	}
	return false
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// ToRadians converts an angle in the given unit to radians. Unknown units
// are treated as degrees, the camera convention for field of view.
func ToRadians(angle float64, unit string) float64 {
	switch unit {
	case Radians:
		return angle
	default:
		return DegToRad(angle)
	}
}
