package wave

import (
	"fmt"

	"github.com/Faultbox/seismo/pkg/math"
)

// Registry holds a fixed, ordered set of models, the active selection and
// the canonical Parameters every model evaluates against.
//
// A Registry is not safe for concurrent mutation. Setters are expected to
// run between simulation ticks.
type Registry struct {
	params Parameters
	models []Model
	active int
}

// NewRegistry creates a registry over models with the first one active.
func NewRegistry(params Parameters, models ...Model) (*Registry, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: registry needs at least one model", ErrInvalidModelIndex)
	}
	for i, m := range models {
		if m == nil {
			return nil, fmt.Errorf("%w: model %d is nil", ErrInvalidModelIndex, i)
		}
	}
	return &Registry{
		params: params,
		models: append([]Model(nil), models...),
	}, nil
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.models)
}

// Model returns the model at index i.
func (r *Registry) Model(i int) (Model, error) {
	if i < 0 || i >= len(r.models) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidModelIndex, i, len(r.models))
	}
	return r.models[i], nil
}

// Select makes the model at index i active.
func (r *Registry) Select(i int) error {
	if i < 0 || i >= len(r.models) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidModelIndex, i, len(r.models))
	}
	r.active = i
	return nil
}

// SelectKind activates the first model of kind k.
func (r *Registry) SelectKind(k Kind) error {
	for i, m := range r.models {
		if m.Kind() == k {
			r.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not registered", ErrUnknownModel, k)
}

// Active returns the active model.
func (r *Registry) Active() Model {
	return r.models[r.active]
}

// ActiveIndex returns the index of the active model.
func (r *Registry) ActiveIndex() int {
	return r.active
}

// Parameters returns a copy of the shared parameters.
func (r *Registry) Parameters() Parameters {
	return r.params
}

// SetAmplitude updates the amplitude for every model.
func (r *Registry) SetAmplitude(a float64) {
	r.params.SetAmplitude(a)
}

// SetVelocity updates the velocity for every model.
func (r *Registry) SetVelocity(v float64) {
	r.params.SetVelocity(v)
}

// SetPeriod updates the period for every model. On error the previous
// frequency is kept.
func (r *Registry) SetPeriod(period float64) error {
	return r.params.SetPeriod(period)
}

// SetDissipation updates the dissipation for every model.
func (r *Registry) SetDissipation(d float64) {
	r.params.SetDissipation(d)
}

// Displacement evaluates the active model.
func (r *Registry) Displacement(coord math.Vec4, t float64) math.Vec4 {
	return r.models[r.active].Displacement(&r.params, coord, t)
}
