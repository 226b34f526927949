package wave

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/seismo/pkg/math"
)

// Rayleigh model tuning constants.
const (
	// RayleighOmega is the working angular frequency.
	RayleighOmega = 2.5
	// RayleighScaleDivisor divides the frequency to get the coordinate and
	// amplitude scale factor.
	RayleighScaleDivisor = 5.0
	// RayleighLongitudinalStretch is an extra scale applied to Z so the
	// wave spans the elongated side faces.
	RayleighLongitudinalStretch = 0.25
)

// Material holds the elastic constants of the medium. The models use
// DefaultMaterial; other values exist for tests and tooling only.
//
// The Rayleigh model is valid for E > 0, rho > 0 and 0 <= nu < 0.5. In that
// range mu > 0, lambda >= 0 and theta_R < 1, so c > c_T > c_L and both
// decay exponents are real.
type Material struct {
	YoungModulus float64
	Density      float64
	PoissonRatio float64
}

// DefaultMaterial returns the reference medium: E=1, rho=10, nu=0.3.
func DefaultMaterial() Material {
	return Material{
		YoungModulus: 1.0,
		Density:      10.0,
		PoissonRatio: 0.3,
	}
}

// Validate checks that the material lies in the supported regime.
func (m Material) Validate() error {
	switch {
	case !(m.YoungModulus > 0):
		return fmt.Errorf("%w: young modulus %g must be positive", ErrInvalidMaterial, m.YoungModulus)
	case !(m.Density > 0):
		return fmt.Errorf("%w: density %g must be positive", ErrInvalidMaterial, m.Density)
	case !(m.PoissonRatio >= 0 && m.PoissonRatio < 0.5):
		return fmt.Errorf("%w: poisson ratio %g outside [0, 0.5)", ErrInvalidMaterial, m.PoissonRatio)
	}
	return nil
}

// Lame returns the Lamé parameters lambda and mu.
func (m Material) Lame() (lambda, mu float64) {
	e, nu := m.YoungModulus, m.PoissonRatio
	lambda = nu * e / ((1 + nu) * (1 - 2*nu))
	mu = e / (2 * (1 + nu))
	return lambda, mu
}

// ThetaR is the approximate Rayleigh-wave factor (0.87 + 1.12nu) / (1 + nu).
func (m Material) ThetaR() float64 {
	nu := m.PoissonRatio
	return (0.87 + 1.12*nu) / (1 + nu)
}

// Speeds holds the wave numbers derived from a Material at RayleighOmega.
type Speeds struct {
	Longitudinal float64 // c_L
	Transversal  float64 // c_T
	Rayleigh     float64 // c
	QR           float64 // sqrt(c^2 - c_L^2)
	SR           float64 // sqrt(c^2 - c_T^2)
}

// Speeds derives the wave numbers for the material.
func (m Material) Speeds() (Speeds, error) {
	if err := m.Validate(); err != nil {
		return Speeds{}, err
	}
	lambda, mu := m.Lame()

	cL := RayleighOmega * gomath.Sqrt(m.Density/(lambda+2*mu))
	cT := RayleighOmega * gomath.Sqrt(m.Density/mu)
	c := cT / gomath.Sqrt(m.ThetaR())

	c2 := c * c
	if c2 < cL*cL || c2 < cT*cT {
		return Speeds{}, fmt.Errorf("%w: rayleigh speed %g below body wave speeds (c_L=%g, c_T=%g)",
			ErrInvalidMaterial, c, cL, cT)
	}

	return Speeds{
		Longitudinal: cL,
		Transversal:  cT,
		Rayleigh:     c,
		QR:           gomath.Sqrt(c2 - cL*cL),
		SR:           gomath.Sqrt(c2 - cT*cT),
	}, nil
}

// Rayleigh is a surface wave with coupled vertical (Y) and longitudinal (Z)
// motion. The two components decay with depth through two independent rates.
type Rayleigh struct {
	size     float64
	material Material
	speeds   Speeds

	// Depth profile coefficients, constant for a given material.
	coefY float64
	coefZ float64
}

// NewRayleigh creates a Rayleigh model. The material is checked once here;
// evaluation never re-validates it.
func NewRayleigh(size float64, material Material) (*Rayleigh, error) {
	speeds, err := material.Speeds()
	if err != nil {
		return nil, err
	}

	c2 := speeds.Rayleigh * speeds.Rayleigh
	cT2 := speeds.Transversal * speeds.Transversal

	return &Rayleigh{
		size:     size,
		material: material,
		speeds:   speeds,
		coefY:    2 * speeds.QR * speeds.SR / cT2,
		coefZ:    2 * c2 / (2*c2 - cT2),
	}, nil
}

// Kind implements Model.
func (r *Rayleigh) Kind() Kind { return KindRayleigh }

// Material returns the medium the model was built for.
func (r *Rayleigh) Material() Material { return r.material }

// Speeds returns the precomputed wave numbers.
func (r *Rayleigh) Speeds() Speeds { return r.speeds }

// Displacement implements Model.
func (r *Rayleigh) Displacement(p *Parameters, coord math.Vec4, t float64) math.Vec4 {
	scale := p.Frequency / RayleighScaleDivisor
	amplitude := p.Amplitude * scale

	y := float64(coord[math.Y]) * scale
	z := float64(coord[math.Z]) * scale * RayleighLongitudinalStretch

	depth := r.size/2.0*scale - y
	delta := depth / r.size * p.Dissipation * 2.0

	s := r.speeds
	decayQ := gomath.Exp(-s.QR * delta)
	decayS := gomath.Exp(-s.SR * delta)

	phi := s.Rayleigh*z - RayleighOmega*t*p.Velocity

	dy := amplitude * s.Rayleigh * (decayQ - r.coefY*decayS) * gomath.Cos(phi-gomath.Pi/2.0)
	dz := amplitude * s.QR * (decayQ - r.coefZ*decayS) * gomath.Cos(phi)

	return math.Vec4{0, float32(dy), float32(dz), 0}
}
