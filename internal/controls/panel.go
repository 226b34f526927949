package controls

import (
	"fmt"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/pkg/wave"
)

// Target receives the values chosen on a Panel.
type Target interface {
	SelectModel(i int) error
	SetVelocity(v float64)
	SetPeriod(p float64) error
	SetDissipation(d float64)
}

// Panel is the viewer's control set: one slider per tunable parameter
// and a model selector.
type Panel struct {
	Velocity    *Slider
	Period      *Slider
	Dissipation *Slider
	Models      *Buttons

	step float64
	errs []error
}

// NewPanel builds the controls from cfg and wires them to target. Model
// buttons are labelled by kind in registry order.
func NewPanel(cfg *config.Config, target Target, active int) (*Panel, error) {
	p := &Panel{step: cfg.Controls.KeyStep}
	w := cfg.Wave
	c := cfg.Controls

	var err error
	if p.Velocity, err = NewSlider("velocity", c.Velocity.Min, c.Velocity.Max, w.Velocity, target.SetVelocity); err != nil {
		return nil, err
	}
	if p.Period, err = NewSlider("period", c.Period.Min, c.Period.Max, w.Period, func(v float64) {
		if err := target.SetPeriod(v); err != nil {
			p.errs = append(p.errs, err)
		}
	}); err != nil {
		return nil, err
	}
	if p.Dissipation, err = NewSlider("dissipation", c.Dissipation.Min, c.Dissipation.Max, w.Dissipation, target.SetDissipation); err != nil {
		return nil, err
	}

	labels := make([]string, len(wave.Kinds))
	for i, k := range wave.Kinds {
		labels[i] = k.String()
	}
	if p.Models, err = NewButtons(labels, active, func(i int) {
		if err := target.SelectModel(i); err != nil {
			p.errs = append(p.errs, err)
		}
	}); err != nil {
		return nil, fmt.Errorf("model buttons: %w", err)
	}

	return p, nil
}

// Nudge moves s by n key steps.
func (p *Panel) Nudge(s *Slider, n int) float64 {
	return s.Step(float64(n) * p.step)
}

// Errors returns and clears the errors the target reported since the
// last call.
func (p *Panel) Errors() []error {
	errs := p.errs
	p.errs = nil
	return errs
}

// Summary formats the current values, e.g. for a window title.
func (p *Panel) Summary() string {
	return fmt.Sprintf("%s | velocity %.2f | period %.2f | dissipation %.2f",
		p.Models.Label(p.Models.Active()), p.Velocity.Value(), p.Period.Value(), p.Dissipation.Value())
}
