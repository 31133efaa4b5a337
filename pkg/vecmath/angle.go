package vecmath

import "math"

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad / math.Pi * 180.0
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
