package transform

import "github.com/Faultbox/glcore/pkg/math"

// Model pairs a named mesh with its Transform.
type Model struct {
	Mesh      string
	Transform *Transform
}

// NewModel returns a model for mesh at the origin.
func NewModel(mesh string) *Model {
	return &Model{Mesh: mesh, Transform: New()}
}

func (m *Model) SetScale(x, y, z float32) *Model {
	m.Transform.Scale.Set(x, y, z)
	return m
}

func (m *Model) SetPosition(x, y, z float32) *Model {
	m.Transform.Position.Set(x, y, z)
	return m
}

// SetRotation sets the rotation in degrees.
func (m *Model) SetRotation(x, y, z float32) *Model {
	m.Transform.Rotation.Set(x, y, z)
	return m
}

func (m *Model) AddScale(x, y, z float32) *Model {
	add(&m.Transform.Scale, x, y, z)
	return m
}

func (m *Model) AddPosition(x, y, z float32) *Model {
	add(&m.Transform.Position, x, y, z)
	return m
}

// AddRotation adds to the rotation in degrees.
func (m *Model) AddRotation(x, y, z float32) *Model {
	add(&m.Transform.Rotation, x, y, z)
	return m
}

// PreRender refreshes the model matrix. Call it once per frame before drawing.
func (m *Model) PreRender() *Model {
	m.Transform.UpdateMatrix()
	return m
}

func add(v *math.Vector3, x, y, z float32) {
	v.X += x
	v.Y += y
	v.Z += z
}
