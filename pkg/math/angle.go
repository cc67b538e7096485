package math

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return float32(float64(deg) * degToRad)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return float32(float64(rad) * radToDeg)
}

func sincos(rad float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(rad))
	return float32(s64), float32(c64)
}
