package math

// Matrix4 owns a single Mat4 buffer and composes transforms onto it.
// Each mutator applies its transform in the object's local space, so
// m.Translate(...).RotateY(...) rotates first and then translates
// when the result is applied to a vertex.
type Matrix4 struct {
	Mat Mat4
}

// NewMatrix4 returns an identity Matrix4.
func NewMatrix4() *Matrix4 {
	return &Matrix4{Mat: Identity()}
}

// Translate applies a translation.
func (m *Matrix4) Translate(x, y, z float32) *Matrix4 {
	Translate(&m.Mat, x, y, z)
	return m
}

// VTranslate applies a translation by v.
func (m *Matrix4) VTranslate(v *Vector3) *Matrix4 {
	Translate(&m.Mat, v.X, v.Y, v.Z)
	return m
}

func (m *Matrix4) RotateX(rad float32) *Matrix4 {
	RotateX(&m.Mat, rad)
	return m
}

func (m *Matrix4) RotateY(rad float32) *Matrix4 {
	RotateY(&m.Mat, rad)
	return m
}

func (m *Matrix4) RotateZ(rad float32) *Matrix4 {
	RotateZ(&m.Mat, rad)
	return m
}

// Rotate applies a rotation around an arbitrary axis.
func (m *Matrix4) Rotate(rad float32, axis Vector3) *Matrix4 {
	Rotate(&m.Mat, rad, axis)
	return m
}

// Scale applies a non-uniform scale.
func (m *Matrix4) Scale(x, y, z float32) *Matrix4 {
	Scale(&m.Mat, x, y, z)
	return m
}

// VScale applies a scale by the components of v.
func (m *Matrix4) VScale(v *Vector3) *Matrix4 {
	Scale(&m.Mat, v.X, v.Y, v.Z)
	return m
}

// Invert inverts the matrix in place. A singular matrix is left as is;
// use TryInvert to find out whether that happened.
func (m *Matrix4) Invert() *Matrix4 {
	Invert(&m.Mat, nil)
	return m
}

// TryInvert inverts the matrix in place and reports whether it was invertible.
func (m *Matrix4) TryInvert() bool {
	return Invert(&m.Mat, nil)
}

// ResetRotation sets indices 0-11 and 15 back to identity, keeping the
// translation in indices 12-14.
func (m *Matrix4) ResetRotation() *Matrix4 {
	for i := 0; i < 16; i++ {
		if i < 12 || i == 15 {
			m.Mat[i] = identityAt(i)
		}
	}
	return m
}

// Reset sets the whole matrix back to identity.
func (m *Matrix4) Reset() *Matrix4 {
	m.Mat = Identity()
	return m
}

// Copy overwrites the matrix with src.
func (m *Matrix4) Copy(src *Mat4) *Matrix4 {
	m.Mat = *src
	return m
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Matrix4) Ptr() *float32 {
	return &m.Mat[0]
}

// Elements returns the backing buffer as a slice. The slice aliases m.
func (m *Matrix4) Elements() []float32 {
	return m.Mat[:]
}

// identityAt is the identity value at flat index i: diagonal indices are
// multiples of 5.
func identityAt(i int) float32 {
	if i%5 == 0 {
		return 1
	}
	return 0
}
