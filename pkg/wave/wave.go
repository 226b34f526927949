// Package wave provides analytic seismic surface-wave displacement models.
//
// A model maps a base coordinate and an elapsed time to a displacement
// vector. All models read the same Parameters, owned by a Registry.
package wave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/seismo/pkg/math"
)

// Wave model errors.
var (
	ErrInvalidParameter  = errors.New("invalid wave parameter")
	ErrInvalidModelIndex = errors.New("invalid model index")
	ErrUnknownModel      = errors.New("unknown wave model")
	ErrInvalidMaterial   = errors.New("invalid material constants")
)

// Kind identifies one of the built-in wave models.
type Kind int

// Built-in model kinds. The default registry stores them in this order.
const (
	KindNull Kind = iota
	KindLove
	KindRayleigh
)

// Kinds lists every built-in kind in registry order.
var Kinds = []Kind{KindNull, KindLove, KindRayleigh}

// String returns the lower-case model name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindLove:
		return "love"
	case KindRayleigh:
		return "rayleigh"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind resolves a model name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "null", "none":
		return KindNull, nil
	case "love":
		return KindLove, nil
	case "rayleigh":
		return KindRayleigh, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Model evaluates a displacement field.
type Model interface {
	// Kind reports which built-in model this is.
	Kind() Kind
	// Displacement returns the offset of coord at time t. The W component
	// of the result is always 0.
	Displacement(p *Parameters, coord math.Vec4, t float64) math.Vec4
}

// DefaultModels builds the fixed model set for a domain of the given size,
// ordered so that the slice index equals the model's Kind.
func DefaultModels(size float64) ([]Model, error) {
	rayleigh, err := NewRayleigh(size, DefaultMaterial())
	if err != nil {
		return nil, err
	}
	return []Model{
		Null{},
		NewLove(size),
		rayleigh,
	}, nil
}
