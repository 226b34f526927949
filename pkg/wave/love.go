package wave

import (
	gomath "math"

	"github.com/Faultbox/seismo/pkg/math"
)

// Love is a shear-horizontal surface wave. Particles move along X only,
// the wave travels along Z and the amplitude decays exponentially with depth.
type Love struct {
	size float64
}

// NewLove creates a Love model for a domain of the given size. Depth is
// measured down from y = size/2.
func NewLove(size float64) *Love {
	return &Love{size: size}
}

// Kind implements Model.
func (l *Love) Kind() Kind { return KindLove }

// Displacement implements Model.
//
// Points above the surface get a negative depth and are amplified rather
// than damped.
func (l *Love) Displacement(p *Parameters, coord math.Vec4, t float64) math.Vec4 {
	depth := l.size/2.0 - float64(coord[math.Y])
	delta := depth / l.size

	phase := p.Frequency*float64(coord[math.Z]) - p.Velocity*t
	dx := p.Amplitude * gomath.Exp(-p.Dissipation*delta) * gomath.Cos(phase)

	return math.Vec4{float32(dx), 0, 0, 0}
}
