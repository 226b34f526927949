package grid

import (
	"errors"
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/seismo/pkg/math"
)

func mustGeometry(t *testing.T, preset Preset, size float64, res int, origin math.Vec3) Geometry {
	t.Helper()
	g, err := NewGeometry(preset, size, res, origin)
	if err != nil {
		t.Fatalf("NewGeometry failed: %v", err)
	}
	return g
}

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestNewGeometryErrors(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		size    float64
		res     int
		wantErr error
	}{
		{"resolution one", PresetCentered, 1, 1, ErrInvalidResolution},
		{"zero size", PresetCentered, 0, 4, ErrInvalidSize},
		{"negative size", PresetAnchored, -1, 4, ErrInvalidSize},
		{"nan size", PresetAnchored, gomath.NaN(), 4, ErrInvalidSize},
		{"unknown preset", Preset(7), 1, 4, ErrUnknownPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.preset, tt.size, tt.res, math.Vec3{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewGeometry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for name, want := range map[string]Preset{"centered": PresetCentered, "Anchored": PresetAnchored} {
		got, err := ParsePreset(name)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %v, %v", name, got, err)
		}
		if back, _ := ParsePreset(got.String()); back != got {
			t.Errorf("%v does not round-trip", got)
		}
	}
	if _, err := ParsePreset("floating"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestFaceDimensions(t *testing.T) {
	g := mustGeometry(t, PresetCentered, 1.0, 4, math.Vec3{})
	faces, err := NewFaces(g)
	if err != nil {
		t.Fatalf("NewFaces failed: %v", err)
	}

	want := map[Orientation][2]int{
		Top:   {4 * DepthFactor, 4},
		Left:  {4 * DepthFactor, 4},
		Front: {4, 4},
	}
	for _, f := range faces {
		dims := want[f.Orientation()]
		if f.Rows() != dims[0] || f.Cols() != dims[1] {
			t.Errorf("%s: %dx%d, want %dx%d", f.Orientation(), f.Rows(), f.Cols(), dims[0], dims[1])
		}
		if f.BufferLen() != f.Len()*Stride {
			t.Errorf("%s: buffer len %d, want %d", f.Orientation(), f.BufferLen(), f.Len()*Stride)
		}
	}
}

func TestFaceOffset(t *testing.T) {
	g := mustGeometry(t, PresetCentered, 1.0, 5, math.Vec3{})
	f, err := NewFace(Top, g)
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}

	for _, uv := range [][2]int{{0, 0}, {0, 4}, {1, 0}, {7, 3}, {24, 4}} {
		want := (uv[0]*5 + uv[1]) * 4
		if got := f.Offset(uv[0], uv[1]); got != want {
			t.Errorf("Offset(%d, %d) = %d, want %d", uv[0], uv[1], got, want)
		}
	}
}

func TestCenteredPlanes(t *testing.T) {
	const size = 2.0
	g := mustGeometry(t, PresetCentered, size, 4, math.Vec3{X: 9, Y: 9, Z: 9})
	faces, err := NewFaces(g)
	if err != nil {
		t.Fatalf("NewFaces failed: %v", err)
	}

	for _, f := range faces {
		for u := 0; u < f.Rows(); u++ {
			for v := 0; v < f.Cols(); v++ {
				p := f.Base(u, v)
				if p[math.W] != 0 {
					t.Fatalf("%s (%d,%d): w = %v", f.Orientation(), u, v, p[math.W])
				}
				switch f.Orientation() {
				case Top:
					if p[math.Y] != size/2 {
						t.Fatalf("top (%d,%d): y = %v, want %v", u, v, p[math.Y], size/2)
					}
				case Left:
					if p[math.X] != 0 {
						t.Fatalf("left (%d,%d): x = %v, want 0", u, v, p[math.X])
					}
				case Front:
					if p[math.Z] != size*DepthFactor {
						t.Fatalf("front (%d,%d): z = %v, want %v", u, v, p[math.Z], size*DepthFactor)
					}
				}
			}
		}
	}
}

func TestAnchoredCorners(t *testing.T) {
	origin := math.Vec3{X: -1, Y: -2, Z: -3}
	g := mustGeometry(t, PresetAnchored, 1.0, 3, origin)

	top, err := NewFace(Top, g)
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}

	first := top.Base(0, 0)
	if first != (math.Vec4{-1, -1, -3, 0}) {
		t.Errorf("top first = %v", first)
	}
	last := top.Base(top.Rows()-1, top.Cols()-1)
	if !near(last[math.X], 0) || !near(last[math.Y], -1) || !near(last[math.Z], 2) {
		t.Errorf("top last = %v, want (0, -1, 2)", last)
	}

	// Step between lattice points along Z.
	step := top.Base(1, 0)[math.Z] - first[math.Z]
	want := float32(5.0 / (3*DepthFactor - 1))
	if !near(step, want) {
		t.Errorf("z step = %v, want %v", step, want)
	}

	front, err := NewFace(Front, g)
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}
	if p := front.Base(2, 0); !near(p[math.X], 0) || p[math.Y] != -2 || p[math.Z] != 2 {
		t.Errorf("front (2,0) = %v, want (0, -2, 2)", p)
	}
}

func TestConstructionDeterministic(t *testing.T) {
	g := mustGeometry(t, PresetAnchored, 1.3, 7, math.Vec3{X: 0.1, Y: -0.6, Z: 0.2})

	a, err := NewFaces(g)
	if err != nil {
		t.Fatalf("NewFaces failed: %v", err)
	}
	b, err := NewFaces(g)
	if err != nil {
		t.Fatalf("NewFaces failed: %v", err)
	}

	for i := range a {
		bufA := make([]float32, a[i].BufferLen())
		bufB := make([]float32, b[i].BufferLen())
		a[i].CopyBase(bufA)
		b[i].CopyBase(bufB)

		for j := range bufA {
			if gomath.Float32bits(bufA[j]) != gomath.Float32bits(bufB[j]) {
				t.Fatalf("%s: base[%d] differs: %v vs %v", a[i].Orientation(), j, bufA[j], bufB[j])
			}
		}
		if !reflect.DeepEqual(a[i].Triangles(), b[i].Triangles()) {
			t.Errorf("%s: triangle indices differ", a[i].Orientation())
		}
		if !reflect.DeepEqual(a[i].Lines(), b[i].Lines()) {
			t.Errorf("%s: line indices differ", a[i].Orientation())
		}
	}
}

func TestNewFaceUnknownOrientation(t *testing.T) {
	g := mustGeometry(t, PresetCentered, 1, 2, math.Vec3{})
	if _, err := NewFace(Orientation(9), g); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("expected ErrUnknownFace, got %v", err)
	}
}

func TestGeometryBounds(t *testing.T) {
	g := mustGeometry(t, PresetCentered, 1, 4, math.Vec3{})
	b := g.Bounds()
	if b.Min != (math.Vec3{X: 0, Y: -0.5, Z: 0}) || b.Max != (math.Vec3{X: 1, Y: 0.5, Z: 5}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if c := b.Center(); c != (math.Vec3{X: 0.5, Y: 0, Z: 2.5}) {
		t.Errorf("Center() = %+v", c)
	}
}
