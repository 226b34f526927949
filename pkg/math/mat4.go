package math

import "math"

// Mat4 is a column-major 4x4 matrix, the layout glUniformMatrix4fv expects
// with transpose false. Element (row, col) lives at index col*4 + row.
type Mat4 [16]float32

// Perspective builds a right-handed projection mapping view-space depth
// [-near, -far] onto NDC [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	depth := near - far

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}

// LookAt builds a view matrix placing eye at the origin and looking down
// -Z towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	side := forward.Cross(up).Normalize()
	upward := side.Cross(forward)

	return Mat4{
		side.X, upward.X, -forward.X, 0,
		side.Y, upward.Y, -forward.Y, 0,
		side.Z, upward.Z, -forward.Z, 0,
		-side.Dot(eye), -upward.Dot(eye), forward.Dot(eye), 1,
	}
}

// Mul returns m * other, so other is applied first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		v := m.MulVec4(Vec4{other[col*4], other[col*4+1], other[col*4+2], other[col*4+3]})
		copy(out[col*4:col*4+4], v[:])
	}
	return out
}

// Ptr returns a pointer to the first element for GL uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}
