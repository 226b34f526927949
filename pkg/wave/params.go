package wave

import "fmt"

// Parameters holds the user-tunable state shared by every model.
//
// Frequency is the inverse of the configured period. It is computed once in
// SetPeriod and used directly as a multiplier afterwards.
type Parameters struct {
	Amplitude   float64
	Velocity    float64
	Frequency   float64
	Dissipation float64
}

// NewParameters builds Parameters from the configured period.
func NewParameters(amplitude, velocity, period, dissipation float64) (Parameters, error) {
	p := Parameters{
		Amplitude:   amplitude,
		Velocity:    velocity,
		Dissipation: dissipation,
	}
	if err := p.SetPeriod(period); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// SetAmplitude sets the peak displacement.
func (p *Parameters) SetAmplitude(a float64) {
	p.Amplitude = a
}

// SetVelocity sets the phase velocity. Negative values reverse the wave.
func (p *Parameters) SetVelocity(v float64) {
	p.Velocity = v
}

// SetPeriod stores 1/period as the frequency. A zero period is rejected.
func (p *Parameters) SetPeriod(period float64) error {
	if period == 0 {
		return fmt.Errorf("%w: period must be non-zero", ErrInvalidParameter)
	}
	p.Frequency = 1.0 / period
	return nil
}

// Period returns the period the frequency was derived from, or 0 for
// Parameters that never had a period set.
func (p *Parameters) Period() float64 {
	if p.Frequency == 0 {
		return 0
	}
	return 1.0 / p.Frequency
}

// SetDissipation sets the depth decay rate. Values are not validated.
func (p *Parameters) SetDissipation(d float64) {
	p.Dissipation = d
}
