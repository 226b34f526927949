package wave

import "github.com/Faultbox/seismo/pkg/math"

// Null is the zero displacement field.
type Null struct{}

// Kind implements Model.
func (Null) Kind() Kind { return KindNull }

// Displacement implements Model.
func (Null) Displacement(*Parameters, math.Vec4, float64) math.Vec4 {
	return math.Vec4{}
}
