package sim

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
	"github.com/Faultbox/seismo/pkg/wave"
)

func newTestSimulator(t *testing.T, amplitude float64, kind wave.Kind, opts Options) *Simulator {
	t.Helper()

	params, err := wave.NewParameters(amplitude, 2.0, 0.5, 1.0)
	if err != nil {
		t.Fatalf("NewParameters: %v", err)
	}
	models, err := wave.DefaultModels(1.0)
	if err != nil {
		t.Fatalf("DefaultModels: %v", err)
	}
	reg, err := wave.NewRegistry(params, models...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := reg.SelectKind(kind); err != nil {
		t.Fatalf("SelectKind: %v", err)
	}

	geom, err := grid.NewGeometry(grid.PresetCentered, 1.0, 6, math.Vec3{})
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	faces, err := grid.NewFaces(geom)
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}

	s, err := New(reg, faces, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewErrors(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})

	if _, err := New(nil, s.Faces(), Options{}); !errors.Is(err, ErrNoRegistry) {
		t.Errorf("nil registry: got %v, want ErrNoRegistry", err)
	}
	if _, err := New(s.Registry(), nil, Options{}); !errors.Is(err, ErrNoFaces) {
		t.Errorf("no faces: got %v, want ErrNoFaces", err)
	}
}

func TestOutputStartsAtBase(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})

	for i, f := range s.Faces() {
		out := s.Output(i)
		if len(out) != f.BufferLen() {
			t.Fatalf("face %d: output len = %d, want %d", i, len(out), f.BufferLen())
		}
		for u := 0; u < f.Rows(); u++ {
			for v := 0; v < f.Cols(); v++ {
				if got, want := math.Load(out, f.Offset(u, v)), f.Base(u, v); got != want {
					t.Fatalf("face %d (%d,%d): got %v, want %v", i, u, v, got, want)
				}
			}
		}
	}
}

func TestUpdateZeroAmplitudeKeepsBase(t *testing.T) {
	for _, kind := range wave.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newTestSimulator(t, 0, kind, Options{})
			s.Update(0)

			for i, f := range s.Faces() {
				for u := 0; u < f.Rows(); u++ {
					for v := 0; v < f.Cols(); v++ {
						got := math.Load(s.Output(i), f.Offset(u, v))
						if got != f.Base(u, v) {
							t.Fatalf("face %d (%d,%d): got %v, want base %v", i, u, v, got, f.Base(u, v))
						}
					}
				}
			}
		})
	}
}

func TestUpdateLoveOnTopFace(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})
	s.Update(0)

	top := s.Faces()[0]
	if top.Orientation() != grid.Top {
		t.Fatalf("first face = %s, want top", top.Orientation())
	}

	// Top sits at y = size/2, so depth is zero and there is no damping.
	got := math.Load(s.Output(0), top.Offset(0, 0))
	base := top.Base(0, 0)
	if !scalar.EqualWithinAbs(float64(got[math.X]), float64(base[math.X])+0.1, 1e-6) {
		t.Errorf("x = %v, want %v", got[math.X], base[math.X]+0.1)
	}
	if got[math.Y] != base[math.Y] || got[math.Z] != base[math.Z] {
		t.Errorf("y,z changed: got %v, base %v", got, base)
	}
	if got[math.W] != 0 {
		t.Errorf("w = %v, want 0", got[math.W])
	}
}

func TestUpdateEveryPoint(t *testing.T) {
	const tm = 1.3

	tests := []struct {
		name string
		opts Options
	}{
		{"sequential", Options{}},
		{"parallel", Options{Parallel: true, Workers: 4}},
	}

	for _, kind := range wave.Kinds {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				s := newTestSimulator(t, 0.1, kind, tt.opts)
				s.Update(tm)

				mismatches := 0
				for i, f := range s.Faces() {
					out := s.Output(i)
					for u := 0; u < f.Rows(); u++ {
						for v := 0; v < f.Cols(); v++ {
							base := f.Base(u, v)
							want := base.Add(s.Registry().Displacement(base, tm))
							want[math.W] = 0

							got := math.Load(out, f.Offset(u, v))
							if got != want {
								if mismatches < 5 {
									t.Errorf("face %s (%d,%d): got %v, want %v", f.Orientation(), u, v, got, want)
								}
								mismatches++
							}
						}
					}
				}
				if mismatches > 0 {
					t.Errorf("%d points differ from base + displacement", mismatches)
				}
			})
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, kind := range wave.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			seq := newTestSimulator(t, 0.1, kind, Options{})
			par := newTestSimulator(t, 0.1, kind, Options{Parallel: true, Workers: 3})

			for _, tm := range []float64{0, 0.25, 1.7} {
				seq.Update(tm)
				par.Update(tm)
				for i := range seq.Faces() {
					a, b := seq.Output(i), par.Output(i)
					for j := range a {
						if a[j] != b[j] {
							t.Fatalf("t=%v face %d float %d: sequential %v, parallel %v", tm, i, j, a[j], b[j])
						}
					}
				}
			}
		})
	}
}

func TestAdvanceAndReset(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})

	s.Advance(0.25)
	if got := s.Advance(0.5); got != 0.75 {
		t.Errorf("Advance = %v, want 0.75", got)
	}
	if s.Elapsed() != 0.75 {
		t.Errorf("Elapsed = %v, want 0.75", s.Elapsed())
	}

	s.Reset()
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed after Reset = %v, want 0", s.Elapsed())
	}
	top := s.Faces()[0]
	if got := math.Load(s.Output(0), 0); got != top.Base(0, 0) {
		t.Errorf("output after Reset = %v, want base %v", got, top.Base(0, 0))
	}
}

func TestControls(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})

	if err := s.SelectModel(int(wave.KindRayleigh)); err != nil {
		t.Fatalf("SelectModel: %v", err)
	}
	if got := s.Registry().Active().Kind(); got != wave.KindRayleigh {
		t.Errorf("active = %s, want rayleigh", got)
	}
	if err := s.SelectModel(7); !errors.Is(err, wave.ErrInvalidModelIndex) {
		t.Errorf("SelectModel(7): got %v, want ErrInvalidModelIndex", err)
	}
	if got := s.Registry().Active().Kind(); got != wave.KindRayleigh {
		t.Errorf("active after bad select = %s, want rayleigh", got)
	}
	if err := s.SelectKind(wave.KindNull); err != nil {
		t.Fatalf("SelectKind: %v", err)
	}

	s.SetAmplitude(0.3)
	s.SetVelocity(-1.5)
	s.SetDissipation(2)
	if err := s.SetPeriod(0.25); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if err := s.SetPeriod(0); !errors.Is(err, wave.ErrInvalidParameter) {
		t.Errorf("SetPeriod(0): got %v, want ErrInvalidParameter", err)
	}

	p := s.Registry().Parameters()
	want := wave.Parameters{Amplitude: 0.3, Velocity: -1.5, Frequency: 4, Dissipation: 2}
	if p != want {
		t.Errorf("parameters = %+v, want %+v", p, want)
	}
}

func TestBounds(t *testing.T) {
	s := newTestSimulator(t, 0.1, wave.KindLove, Options{})

	b := s.Bounds()
	wantMin := math.Vec3{X: 0, Y: -0.5, Z: 0}
	wantMax := math.Vec3{X: 1, Y: 0.5, Z: 5}
	if b.Min != wantMin || b.Max != wantMax {
		t.Errorf("Bounds = %+v, want min %v max %v", b, wantMin, wantMax)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Geometry.Resolution = 4
	cfg.Wave.Model = "rayleigh"

	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	if got := s.Registry().Active().Kind(); got != wave.KindRayleigh {
		t.Errorf("active = %s, want rayleigh", got)
	}
	if s.Registry().Len() != len(wave.Kinds) {
		t.Errorf("registry len = %d, want %d", s.Registry().Len(), len(wave.Kinds))
	}
	rayleigh, ok := s.Registry().Active().(*wave.Rayleigh)
	if !ok {
		t.Fatalf("active model is %T, want *wave.Rayleigh", s.Registry().Active())
	}
	if rayleigh.Material() != wave.DefaultMaterial() {
		t.Errorf("material = %+v, want the fixed default %+v", rayleigh.Material(), wave.DefaultMaterial())
	}

	faces := s.Faces()
	if len(faces) != 3 {
		t.Fatalf("faces = %d, want 3", len(faces))
	}
	wantRows := []int{4 * grid.DepthFactor, 4 * grid.DepthFactor, 4}
	for i, f := range faces {
		if f.Rows() != wantRows[i] || f.Cols() != 4 {
			t.Errorf("face %s: %dx%d, want %dx4", f.Orientation(), f.Rows(), f.Cols(), wantRows[i])
		}
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   error
	}{
		{"unknown model", func(c *config.Config) { c.Wave.Model = "p-wave" }, wave.ErrUnknownModel},
		{"zero period", func(c *config.Config) { c.Wave.Period = 0 }, wave.ErrInvalidParameter},
		{"unknown preset", func(c *config.Config) { c.Geometry.Preset = "tilted" }, grid.ErrUnknownPreset},
		{"low resolution", func(c *config.Config) { c.Geometry.Resolution = 1 }, grid.ErrInvalidResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(cfg)
			if _, err := FromConfig(cfg); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
