// Package math provides the vector and matrix types used to build
// model, view and projection matrices for the lessons.
package math

import "math"

// Vector3 is a mutable 3D vector. Mutators return the receiver so calls
// can be chained.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns a vector with the given components.
func NewVector3(x, y, z float32) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

// Magnitude returns the length of v. If other is non-nil it returns the
// distance between v and other instead.
func (v *Vector3) Magnitude(other *Vector3) float32 {
	x, y, z := v.X, v.Y, v.Z
	if other != nil {
		x = other.X - x
		y = other.Y - y
		z = other.Z - z
	}
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// Normalize scales v to unit length in place.
// A zero vector produces NaN components.
func (v *Vector3) Normalize() *Vector3 {
	mag := v.Magnitude(nil)
	v.X /= mag
	v.Y /= mag
	v.Z /= mag
	return v
}

// Set overwrites all three components.
func (v *Vector3) Set(x, y, z float32) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// MultiScalar multiplies every component by k.
func (v *Vector3) MultiScalar(k float32) *Vector3 {
	v.X *= k
	v.Y *= k
	v.Z *= k
	return v
}

// Array returns a new slice holding x, y, z.
func (v *Vector3) Array() []float64 {
	return []float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

// FloatArray returns a new single-precision buffer holding x, y, z,
// suitable for a vec3 uniform or vertex attribute.
func (v *Vector3) FloatArray() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Clone returns an independent copy of v.
func (v *Vector3) Clone() *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
