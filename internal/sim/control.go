package sim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/seismo/pkg/wave"
)

// SelectModel activates the model at index i. An invalid index is a
// caller bug and is returned unchanged for the caller to fail on.
func (s *Simulator) SelectModel(i int) error {
	if err := s.registry.Select(i); err != nil {
		return err
	}
	s.log.Info("model selected",
		zap.Int("index", i),
		zap.Stringer("model", s.registry.Active().Kind()),
	)
	return nil
}

// SelectKind activates the model of kind k.
func (s *Simulator) SelectKind(k wave.Kind) error {
	if err := s.registry.SelectKind(k); err != nil {
		return err
	}
	s.log.Info("model selected", zap.Stringer("model", k))
	return nil
}

// SetAmplitude changes the amplitude of every model.
func (s *Simulator) SetAmplitude(a float64) {
	s.registry.SetAmplitude(a)
	s.log.Debug("amplitude changed", zap.Float64("amplitude", a))
}

// SetVelocity changes the velocity of every model.
func (s *Simulator) SetVelocity(v float64) {
	s.registry.SetVelocity(v)
	s.log.Debug("velocity changed", zap.Float64("velocity", v))
}

// SetPeriod changes the period of every model.
func (s *Simulator) SetPeriod(p float64) error {
	if err := s.registry.SetPeriod(p); err != nil {
		s.log.Warn("period rejected", zap.Float64("period", p), zap.Error(err))
		return err
	}
	s.log.Debug("period changed",
		zap.Float64("period", p),
		zap.Float64("frequency", s.registry.Parameters().Frequency),
	)
	return nil
}

// SetDissipation changes the dissipation of every model.
func (s *Simulator) SetDissipation(d float64) {
	s.registry.SetDissipation(d)
	s.log.Debug("dissipation changed", zap.Float64("dissipation", d))
}
