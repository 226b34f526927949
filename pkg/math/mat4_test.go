package math

import (
	"math"
	"testing"
)

func TestMulComposesTransforms(t *testing.T) {
	proj := Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)
	view := LookAt(Vec3{3, 2, 5}, Vec3{0.5, 0, 2.5}, Vec3{0, 1, 0})
	p := Vec4{0.2, -0.4, 1.5, 1}

	got := proj.Mul(view).MulVec4(p)
	want := proj.MulVec4(view.MulVec4(p))
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("component %d: (P*V)*p = %f, P*(V*p) = %f", i, got[i], want[i])
		}
	}
}

func TestMulVec4ColumnMajor(t *testing.T) {
	var m Mat4
	m[12], m[13], m[14] = 1, 2, 3 // translation column
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1

	got := m.MulVec4(Vec4{1, 1, 1, 1})
	if got != (Vec4{2, 3, 4, 1}) {
		t.Errorf("translated point = %v, want [2 3 4 1]", got)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := view.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i])) > 1e-5 {
			t.Errorf("eye in view space = %v, want origin", got)
		}
	}
}

func TestLookAtForwardIsNegativeZ(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	// The look-at target lands on the -Z axis in view space.
	got := view.MulVec4(Vec4{0, 0, 0, 1})
	if math.Abs(float64(got[Z]+5)) > 1e-5 {
		t.Errorf("target z in view space = %f, want -5", got[Z])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	p := Perspective(math.Pi/2, 1, near, far)

	for _, tc := range []struct {
		z    float32
		want float32
	}{
		{-near, -1},
		{-far, 1},
	} {
		clip := p.MulVec4(Vec4{0, 0, tc.z, 1})
		ndc := clip[Z] / clip[W]
		if math.Abs(float64(ndc-tc.want)) > 1e-4 {
			t.Errorf("depth at z=%f: got %f, want %f", tc.z, ndc, tc.want)
		}
	}
}
