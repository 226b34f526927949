package math

// Component indices into a Vec4.
const (
	X = iota
	Y
	Z
	W
)

// Vec4 is a 4-component vector laid out like one vertex of a GPU buffer.
// The W component is padding for wave coordinates and stays 0.
type Vec4 [4]float32

// Add returns v + other component-wise.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[X] + other[X], v[Y] + other[Y], v[Z] + other[Z], v[W] + other[W]}
}

// Vec3 drops the W component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[X], v[Y], v[Z]}
}

// IsZero reports whether every component is exactly zero.
func (v Vec4) IsZero() bool {
	return v == Vec4{}
}

// Load reads the Vec4 stored at offset in a flat buffer.
func Load(buf []float32, offset int) Vec4 {
	return Vec4{buf[offset+X], buf[offset+Y], buf[offset+Z], buf[offset+W]}
}

// Store writes v into a flat buffer at offset.
func (v Vec4) Store(buf []float32, offset int) {
	buf[offset+X] = v[X]
	buf[offset+Y] = v[Y]
	buf[offset+Z] = v[Z]
	buf[offset+W] = v[W]
}
