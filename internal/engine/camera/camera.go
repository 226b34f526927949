// Package camera provides the orbit camera used to inspect the grid.
package camera

import (
	gomath "math"

	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // Pitch (radians)
	RotationY float32 // Yaw (radians)

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FovY      float32 // Radians
	Near, Far float32
}

// NewOrbitCamera creates a camera sized for a box a few units across.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8.0,
		RotationX:       0.5,
		RotationY:       0.8,
		MinDistance:     0.5,
		MaxDistance:     100.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 4,
		Near:            0.01,
		Far:             500.0,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	return math.Vec3{
		X: c.Center.X + c.Distance*float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Center.Y + c.Distance*float32(gomath.Sin(pitch)),
		Z: c.Center.Z + c.Distance*float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns a perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off far enough to see
// its longest edge.
func (c *OrbitCamera) FitToBounds(b grid.Bounds) {
	c.Center = b.Center()

	extent := b.Max.Sub(b.Min).Length()
	half := float64(c.FovY) / 2
	c.Distance = clamp(float32(float64(extent)/2/gomath.Tan(half)), c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
