// Package camera provides the projection and view matrices for a scene.
package camera

import (
	"github.com/Faultbox/glcore/pkg/math"
	"github.com/Faultbox/glcore/pkg/transform"
)

// Mode selects how the camera transform is composed.
type Mode int

const (
	// Free moves along the camera's own axes and rotates in place.
	Free Mode = iota
	// Orbit rotates around the origin at a fixed distance.
	Orbit
)

// Camera owns a projection matrix and derives its view matrix by
// inverting its own transform.
type Camera struct {
	Mode       Mode
	Transform  *transform.Transform
	Projection math.Mat4
	View       math.Mat4

	// viewOK is false when the last UpdateViewMatrix found a singular
	// transform and kept the previous View.
	viewOK bool
}

// NewPerspective creates a camera with a perspective projection.
// fovDeg is the vertical field of view in degrees.
func NewPerspective(fovDeg, aspect, near, far float32) *Camera {
	c := newCamera()
	math.Perspective(&c.Projection, math.DegToRad(fovDeg), aspect, near, far)
	return c
}

// NewOrtho creates a camera with an orthographic projection.
func NewOrtho(left, right, bottom, top, near, far float32) *Camera {
	c := newCamera()
	math.Ortho(&c.Projection, left, right, bottom, top, near, far)
	return c
}

func newCamera() *Camera {
	return &Camera{
		Mode:      Orbit,
		Transform: transform.New(),
		View:      math.Identity(),
		viewOK:    true,
	}
}

// PanX moves the camera sideways. Ignored in orbit mode.
func (c *Camera) PanX(v float32) {
	if c.Mode == Orbit {
		return
	}
	c.UpdateViewMatrix()
	p := &c.Transform.Position
	p.X += c.Transform.Right[0] * v
	p.Y += c.Transform.Right[1] * v
	p.Z += c.Transform.Right[2] * v
}

// PanY moves the camera up. In orbit mode only the Y position changes.
func (c *Camera) PanY(v float32) {
	c.UpdateViewMatrix()
	p := &c.Transform.Position
	p.Y += c.Transform.Up[1] * v
	if c.Mode == Orbit {
		return
	}
	p.X += c.Transform.Up[0] * v
	p.Z += c.Transform.Up[2] * v
}

// PanZ moves the camera forward. In orbit mode it changes the orbit distance.
func (c *Camera) PanZ(v float32) {
	c.UpdateViewMatrix()
	p := &c.Transform.Position
	if c.Mode == Orbit {
		p.Z += v
		return
	}
	p.X += c.Transform.Forward[0] * v
	p.Y += c.Transform.Forward[1] * v
	p.Z += c.Transform.Forward[2] * v
}

// UpdateViewMatrix rebuilds the camera transform and stores its inverse in View.
func (c *Camera) UpdateViewMatrix() *math.Mat4 {
	t := c.Transform
	rx := math.DegToRad(t.Rotation.X)
	ry := math.DegToRad(t.Rotation.Y)

	if c.Mode == Free {
		t.View.Reset().VTranslate(&t.Position).RotateX(rx).RotateY(ry)
	} else {
		t.View.Reset().RotateY(ry).RotateX(rx).VTranslate(&t.Position)
	}
	t.UpdateDirection()

	c.viewOK = math.Invert(&c.View, &t.View.Mat)
	return &c.View
}

// ViewOK reports whether the last UpdateViewMatrix produced a fresh view.
func (c *Camera) ViewOK() bool {
	return c.viewOK
}

// SetPerspective replaces the projection, e.g. after a viewport resize.
func (c *Camera) SetPerspective(fovDeg, aspect, near, far float32) {
	math.Perspective(&c.Projection, math.DegToRad(fovDeg), aspect, near, far)
}
