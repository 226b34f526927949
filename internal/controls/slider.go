// Package controls holds the viewer's input widgets as plain state
// machines, independent of how they are drawn or fed.
package controls

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned for a slider whose range is empty or inverted.
var ErrInvalidRange = errors.New("invalid slider range")

// Slider maps a fraction of its track onto [Min, Max].
type Slider struct {
	Name     string
	Min, Max float64

	value    float64
	onChange func(float64)
}

// NewSlider creates a slider. The initial value is clamped into range and
// does not fire onChange.
func NewSlider(name string, min, max, initial float64, onChange func(float64)) (*Slider, error) {
	if !(max > min) {
		return nil, fmt.Errorf("%w: %s [%g, %g]", ErrInvalidRange, name, min, max)
	}
	return &Slider{
		Name:     name,
		Min:      min,
		Max:      max,
		value:    clamp(initial, min, max),
		onChange: onChange,
	}, nil
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Fraction returns the position of the value along the track in [0, 1].
func (s *Slider) Fraction() float64 {
	return (s.value - s.Min) / (s.Max - s.Min)
}

// SetFraction moves the slider to a point on its track, e.g. the cursor's
// x divided by the track width. Every call fires onChange, even when the
// clamped value is unchanged.
func (s *Slider) SetFraction(f float64) float64 {
	return s.set(f*(s.Max-s.Min) + s.Min)
}

// Step moves the slider by delta of its full range.
func (s *Slider) Step(delta float64) float64 {
	return s.SetFraction(s.Fraction() + delta)
}

func (s *Slider) set(v float64) float64 {
	s.value = clamp(v, s.Min, s.Max)
	if s.onChange != nil {
		s.onChange(s.value)
	}
	return s.value
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
