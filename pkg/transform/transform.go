// Package transform turns position, rotation and scale into the model
// and normal matrices a shader expects.
package transform

import (
	"github.com/Faultbox/glcore/pkg/math"
)

// Transform holds an object's placement. Rotation is in degrees, applied
// X, then Z, then Y.
type Transform struct {
	Position math.Vector3
	Rotation math.Vector3
	Scale    math.Vector3

	// View is the local-to-world matrix rebuilt by UpdateMatrix.
	View math.Matrix4
	// Normal is the normal matrix derived from View.
	Normal math.Mat3
	// NormalOK is false when the last UpdateMatrix hit a singular View
	// and Normal still holds the previous value.
	NormalOK bool

	Forward math.Vec4
	Up      math.Vec4
	Right   math.Vec4
}

// New returns a transform at the origin with unit scale.
func New() *Transform {
	t := &Transform{}
	t.Reset()
	return t
}

// Reset puts the transform back at the origin with unit scale.
func (t *Transform) Reset() *Transform {
	t.Position.Set(0, 0, 0)
	t.Rotation.Set(0, 0, 0)
	t.Scale.Set(1, 1, 1)
	t.View.Reset()
	t.Normal = math.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	t.NormalOK = true
	t.UpdateDirection()
	return t
}

// UpdateMatrix rebuilds View, Normal and the direction vectors from
// Position, Rotation and Scale.
func (t *Transform) UpdateMatrix() *math.Mat4 {
	t.View.Reset().
		VTranslate(&t.Position).
		RotateX(math.DegToRad(t.Rotation.X)).
		RotateZ(math.DegToRad(t.Rotation.Z)).
		RotateY(math.DegToRad(t.Rotation.Y)).
		VScale(&t.Scale)

	t.NormalOK = math.NormalMat3(&t.Normal, &t.View.Mat)
	t.UpdateDirection()
	return &t.View.Mat
}

// UpdateDirection recomputes Forward, Up and Right from the current View.
func (t *Transform) UpdateDirection() *Transform {
	math.TransformVec4(&t.Forward, math.Vec4{0, 0, 1, 0}, &t.View.Mat)
	math.TransformVec4(&t.Up, math.Vec4{0, 1, 0, 0}, &t.View.Mat)
	math.TransformVec4(&t.Right, math.Vec4{1, 0, 0, 0}, &t.View.Mat)
	return t
}
