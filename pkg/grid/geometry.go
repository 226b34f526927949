// Package grid builds the fixed-topology lattices for the three visible
// faces of the simulated box and their index buffers.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/seismo/pkg/math"
)

// Grid errors.
var (
	ErrInvalidResolution = errors.New("invalid grid resolution")
	ErrInvalidSize       = errors.New("invalid grid size")
	ErrUnknownPreset     = errors.New("unknown geometry preset")
	ErrUnknownFace       = errors.New("unknown face orientation")
)

// DepthFactor is how many times longer the box is along Z than along X and Y.
const DepthFactor = 5

// MinResolution is the smallest lattice that still has one quad per face.
const MinResolution = 2

// Preset selects how the box origin is derived.
type Preset int

const (
	// PresetCentered puts the box at origin (0, -size/2, 0): the top face
	// lies at y = +size/2, the left face at x = 0 and the front face at
	// the maximum depth z = size*DepthFactor.
	PresetCentered Preset = iota
	// PresetAnchored uses the configured origin as the box's minimum corner.
	PresetAnchored
)

// String returns the preset name used in configuration.
func (p Preset) String() string {
	switch p {
	case PresetCentered:
		return "centered"
	case PresetAnchored:
		return "anchored"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePreset resolves a preset name (case-insensitive).
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "centered", "centred":
		return PresetCentered, nil
	case "anchored":
		return PresetAnchored, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Geometry describes the simulated box.
type Geometry struct {
	Origin     math.Vec3 // Minimum corner
	Size       float64   // Edge length along X and Y
	Resolution int       // Lattice points along X and Y
}

// NewGeometry validates the inputs and resolves the origin for preset.
// The origin argument is only used by PresetAnchored.
func NewGeometry(preset Preset, size float64, resolution int, origin math.Vec3) (Geometry, error) {
	if resolution < MinResolution {
		return Geometry{}, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidResolution, resolution, MinResolution)
	}
	if !(size > 0) {
		return Geometry{}, fmt.Errorf("%w: %g must be positive", ErrInvalidSize, size)
	}

	switch preset {
	case PresetCentered:
		origin = math.Vec3{X: 0, Y: float32(-size / 2), Z: 0}
	case PresetAnchored:
	default:
		return Geometry{}, fmt.Errorf("%w: %d", ErrUnknownPreset, int(preset))
	}

	return Geometry{
		Origin:     origin,
		Size:       size,
		Resolution: resolution,
	}, nil
}

// Depth returns the extent of the box along Z.
func (g Geometry) Depth() float64 {
	return g.Size * DepthFactor
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Bounds returns the undeformed extent of the box.
func (g Geometry) Bounds() Bounds {
	return Bounds{
		Min: g.Origin,
		Max: math.Vec3{
			X: g.Origin.X + float32(g.Size),
			Y: g.Origin.Y + float32(g.Size),
			Z: g.Origin.Z + float32(g.Depth()),
		},
	}
}
