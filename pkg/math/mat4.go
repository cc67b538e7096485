package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// The routines below write into a caller-owned *Mat4 and do not allocate.
type Mat4 [16]float32

// Mat3 is a 3x3 matrix in column-major order, used for normal matrices.
type Mat3 [9]float32

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// Perspective writes a symmetric perspective projection into out.
// fov is the vertical field of view in radians, aspect is width/height.
// near == far yields infinities.
func Perspective(out *Mat4, fov, aspect, near, far float32) *Mat4 {
	f := float32(1.0 / math.Tan(float64(fov)/2.0))
	nf := 1 / (near - far)

	*out = Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
	return out
}

// Ortho writes an orthographic projection into out.
func Ortho(out *Mat4, left, right, bottom, top, near, far float32) *Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)

	*out = Mat4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
	return out
}

// Transpose writes the transpose of a into out. out may be a.
func Transpose(out, a *Mat4) *Mat4 {
	if out == a {
		// Diagonal stays put; cache the upper triangle before it is overwritten.
		a01, a02, a03 := a[1], a[2], a[3]
		a12, a13 := a[6], a[7]
		a23 := a[11]

		out[1] = a[4]
		out[2] = a[8]
		out[3] = a[12]
		out[4] = a01
		out[6] = a[9]
		out[7] = a[13]
		out[8] = a02
		out[9] = a12
		out[11] = a[14]
		out[12] = a03
		out[13] = a13
		out[14] = a23
		return out
	}

	out[0] = a[0]
	out[1] = a[4]
	out[2] = a[8]
	out[3] = a[12]
	out[4] = a[1]
	out[5] = a[5]
	out[6] = a[9]
	out[7] = a[13]
	out[8] = a[2]
	out[9] = a[6]
	out[10] = a[10]
	out[11] = a[14]
	out[12] = a[3]
	out[13] = a[7]
	out[14] = a[11]
	out[15] = a[15]
	return out
}

// minors holds the twelve 2x2 sub-determinants shared by Invert and NormalMat3.
type minors struct {
	b00, b01, b02, b03, b04, b05 float32
	b06, b07, b08, b09, b10, b11 float32
}

func computeMinors(a *Mat4) (minors, float32) {
	var b minors
	b.b00 = a[0]*a[5] - a[1]*a[4]
	b.b01 = a[0]*a[6] - a[2]*a[4]
	b.b02 = a[0]*a[7] - a[3]*a[4]
	b.b03 = a[1]*a[6] - a[2]*a[5]
	b.b04 = a[1]*a[7] - a[3]*a[5]
	b.b05 = a[2]*a[7] - a[3]*a[6]
	b.b06 = a[8]*a[13] - a[9]*a[12]
	b.b07 = a[8]*a[14] - a[10]*a[12]
	b.b08 = a[8]*a[15] - a[11]*a[12]
	b.b09 = a[9]*a[14] - a[10]*a[13]
	b.b10 = a[9]*a[15] - a[11]*a[13]
	b.b11 = a[10]*a[15] - a[11]*a[14]

	det := b.b00*b.b11 - b.b01*b.b10 + b.b02*b.b09 + b.b03*b.b08 - b.b04*b.b07 + b.b05*b.b06
	return b, det
}

// NormalMat3 writes the inverse-transpose of a's upper 3x3 block into out.
// It returns false, leaving out untouched, when a is singular.
func NormalMat3(out *Mat3, a *Mat4) bool {
	b, det := computeMinors(a)
	if det == 0 {
		return false
	}
	det = 1 / det

	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	out[0] = (a11*b.b11 - a12*b.b10 + a13*b.b09) * det
	out[1] = (a12*b.b08 - a10*b.b11 - a13*b.b07) * det
	out[2] = (a10*b.b10 - a11*b.b08 + a13*b.b06) * det

	out[3] = (a02*b.b10 - a01*b.b11 - a03*b.b09) * det
	out[4] = (a00*b.b11 - a02*b.b08 + a03*b.b07) * det
	out[5] = (a01*b.b08 - a00*b.b10 - a03*b.b06) * det

	out[6] = (a31*b.b05 - a32*b.b04 + a33*b.b03) * det
	out[7] = (a32*b.b02 - a30*b.b05 - a33*b.b01) * det
	out[8] = (a30*b.b04 - a31*b.b02 + a33*b.b00) * det
	return true
}

// MultiplyVector returns m * v as a new Vec4.
//
// Lesson code calls this with the buffer's elements labelled as rows
// (m[0..3] "row 1", and so on), but the sums walk the same indices as
// TransformVec4, so both produce the column-major product. Keep the two
// in step; TestMultiplyVectorMatchesTransformVec4 pins this down.
func MultiplyVector(m *Mat4, v Vec4) Vec4 {
	x, y, z, w := v[0], v[1], v[2], v[3]
	return Vec4{
		x*m[0] + y*m[4] + z*m[8] + w*m[12],
		x*m[1] + y*m[5] + z*m[9] + w*m[13],
		x*m[2] + y*m[6] + z*m[10] + w*m[14],
		x*m[3] + y*m[7] + z*m[11] + w*m[15],
	}
}

// TransformVec4 writes m * v into out (column-major).
func TransformVec4(out *Vec4, v Vec4, m *Mat4) *Vec4 {
	out[0] = m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3]
	out[1] = m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3]
	out[2] = m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3]
	out[3] = m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3]
	return out
}

// Mult writes a * b into out, so b is applied to a vector first.
// a is copied up front and b is read one column at a time before that
// column of out is written, so out may alias a or b.
func Mult(out, a, b *Mat4) *Mat4 {
	ac := *a
	for col := 0; col < 4; col++ {
		b0, b1, b2, b3 := b[col*4], b[col*4+1], b[col*4+2], b[col*4+3]
		for row := 0; row < 4; row++ {
			out[col*4+row] = b0*ac[row] + b1*ac[4+row] + b2*ac[8+row] + b3*ac[12+row]
		}
	}
	return out
}

// Scale multiplies columns 0, 1 and 2 of out by x, y and z.
func Scale(out *Mat4, x, y, z float32) *Mat4 {
	for i := 0; i < 4; i++ {
		out[i] *= x
		out[4+i] *= y
		out[8+i] *= z
	}
	return out
}

// RotateX rotates out about the X axis. Only columns 1 and 2 change.
func RotateX(out *Mat4, rad float32) *Mat4 {
	s, c := sincos(rad)
	for i := 0; i < 4; i++ {
		a1, a2 := out[4+i], out[8+i]
		out[4+i] = a1*c + a2*s
		out[8+i] = a2*c - a1*s
	}
	return out
}

// RotateY rotates out about the Y axis. Only columns 0 and 2 change.
func RotateY(out *Mat4, rad float32) *Mat4 {
	s, c := sincos(rad)
	for i := 0; i < 4; i++ {
		a0, a2 := out[i], out[8+i]
		out[i] = a0*c - a2*s
		out[8+i] = a0*s + a2*c
	}
	return out
}

// RotateZ rotates out about the Z axis. Only columns 0 and 1 change.
func RotateZ(out *Mat4, rad float32) *Mat4 {
	s, c := sincos(rad)
	for i := 0; i < 4; i++ {
		a0, a1 := out[i], out[4+i]
		out[i] = a0*c + a1*s
		out[4+i] = a1*c - a0*s
	}
	return out
}

// Rotate rotates out by rad around an arbitrary axis. The axis does not
// need to be normalized; a near-zero axis leaves out unchanged.
func Rotate(out *Mat4, rad float32, axis Vector3) *Mat4 {
	x, y, z := axis.X, axis.Y, axis.Z
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if l < 1e-6 {
		return out
	}
	l = 1 / l
	x *= l
	y *= l
	z *= l

	s, c := sincos(rad)
	t := 1 - c

	b00, b01, b02 := x*x*t+c, y*x*t+z*s, z*x*t-y*s
	b10, b11, b12 := x*y*t-z*s, y*y*t+c, z*y*t+x*s
	b20, b21, b22 := x*z*t+y*s, y*z*t-x*s, z*z*t+c

	for i := 0; i < 4; i++ {
		a0, a1, a2 := out[i], out[4+i], out[8+i]
		out[i] = a0*b00 + a1*b01 + a2*b02
		out[4+i] = a0*b10 + a1*b11 + a2*b12
		out[8+i] = a0*b20 + a1*b21 + a2*b22
	}
	return out
}

// Invert writes the inverse of m into out. A nil m inverts out in place.
// It returns false, leaving out untouched, when the determinant is zero.
func Invert(out, m *Mat4) bool {
	if m == nil {
		m = out
	}
	a := *m
	b, det := computeMinors(&a)
	if det == 0 {
		return false
	}
	det = 1 / det

	out[0] = (a[5]*b.b11 - a[6]*b.b10 + a[7]*b.b09) * det
	out[1] = (a[2]*b.b10 - a[1]*b.b11 - a[3]*b.b09) * det
	out[2] = (a[13]*b.b05 - a[14]*b.b04 + a[15]*b.b03) * det
	out[3] = (a[10]*b.b04 - a[9]*b.b05 - a[11]*b.b03) * det
	out[4] = (a[6]*b.b08 - a[4]*b.b11 - a[7]*b.b07) * det
	out[5] = (a[0]*b.b11 - a[2]*b.b08 + a[3]*b.b07) * det
	out[6] = (a[14]*b.b02 - a[12]*b.b05 - a[15]*b.b01) * det
	out[7] = (a[8]*b.b05 - a[10]*b.b02 + a[11]*b.b01) * det
	out[8] = (a[4]*b.b10 - a[5]*b.b08 + a[7]*b.b06) * det
	out[9] = (a[1]*b.b08 - a[0]*b.b10 - a[3]*b.b06) * det
	out[10] = (a[12]*b.b04 - a[13]*b.b02 + a[15]*b.b00) * det
	out[11] = (a[9]*b.b02 - a[8]*b.b04 - a[11]*b.b00) * det
	out[12] = (a[5]*b.b07 - a[4]*b.b09 - a[6]*b.b06) * det
	out[13] = (a[0]*b.b09 - a[1]*b.b07 + a[2]*b.b06) * det
	out[14] = (a[13]*b.b01 - a[12]*b.b03 - a[14]*b.b00) * det
	out[15] = (a[8]*b.b03 - a[9]*b.b01 + a[10]*b.b00) * det
	return true
}

// Translate moves out by (x, y, z) in its own local space. Only column 3 changes.
func Translate(out *Mat4, x, y, z float32) *Mat4 {
	out[12] = out[0]*x + out[4]*y + out[8]*z + out[12]
	out[13] = out[1]*x + out[5]*y + out[9]*z + out[13]
	out[14] = out[2]*x + out[6]*y + out[10]*z + out[14]
	out[15] = out[3]*x + out[7]*y + out[11]*z + out[15]
	return out
}
