package controls

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/pkg/wave"
)

type recorder struct {
	model       int
	velocity    float64
	period      float64
	dissipation float64
	calls       int
}

func (r *recorder) SelectModel(i int) error {
	r.calls++
	if i < 0 || i >= len(wave.Kinds) {
		return wave.ErrInvalidModelIndex
	}
	r.model = i
	return nil
}

func (r *recorder) SetVelocity(v float64)    { r.calls++; r.velocity = v }
func (r *recorder) SetDissipation(d float64) { r.calls++; r.dissipation = d }

func (r *recorder) SetPeriod(p float64) error {
	r.calls++
	if p == 0 {
		return wave.ErrInvalidParameter
	}
	r.period = p
	return nil
}

func TestNewPanel(t *testing.T) {
	cfg := config.Default()
	rec := &recorder{}

	p, err := NewPanel(cfg, rec, int(wave.KindLove))
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}
	if rec.calls != 0 {
		t.Errorf("construction made %d target calls, want 0", rec.calls)
	}

	if p.Velocity.Value() != cfg.Wave.Velocity {
		t.Errorf("velocity = %v, want %v", p.Velocity.Value(), cfg.Wave.Velocity)
	}
	if p.Models.Active() != int(wave.KindLove) || p.Models.Label(2) != "rayleigh" {
		t.Errorf("models active=%d label(2)=%q", p.Models.Active(), p.Models.Label(2))
	}
	if s := p.Summary(); !strings.HasPrefix(s, "love |") {
		t.Errorf("Summary = %q", s)
	}
}

func TestPanelDrivesTarget(t *testing.T) {
	cfg := config.Default()
	rec := &recorder{}

	p, err := NewPanel(cfg, rec, int(wave.KindLove))
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}

	p.Velocity.SetFraction(1)
	if rec.velocity != cfg.Controls.Velocity.Max {
		t.Errorf("velocity = %v, want %v", rec.velocity, cfg.Controls.Velocity.Max)
	}

	p.Nudge(p.Dissipation, 10)
	want := cfg.Wave.Dissipation + 10*cfg.Controls.KeyStep*(cfg.Controls.Dissipation.Max-cfg.Controls.Dissipation.Min)
	if !scalar.EqualWithinAbs(rec.dissipation, want, 1e-9) {
		t.Errorf("dissipation = %v, want %v", rec.dissipation, want)
	}

	p.Period.SetFraction(0)
	if rec.period != cfg.Controls.Period.Min {
		t.Errorf("period = %v, want %v", rec.period, cfg.Controls.Period.Min)
	}

	p.Models.Press(int(wave.KindRayleigh))
	if rec.model != int(wave.KindRayleigh) {
		t.Errorf("model = %d, want %d", rec.model, wave.KindRayleigh)
	}
	if errs := p.Errors(); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestPanelCollectsTargetErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Period = config.Range{Min: 0, Max: 2}
	rec := &recorder{}

	p, err := NewPanel(cfg, rec, 0)
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}

	p.Period.SetFraction(0)
	errs := p.Errors()
	if len(errs) != 1 || !errors.Is(errs[0], wave.ErrInvalidParameter) {
		t.Fatalf("errors = %v, want one ErrInvalidParameter", errs)
	}
	if len(p.Errors()) != 0 {
		t.Error("Errors did not clear")
	}
}

func TestNewPanelRejectsBadRange(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Velocity = config.Range{Min: 1, Max: 1}

	if _, err := NewPanel(cfg, &recorder{}, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}
