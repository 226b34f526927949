package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/Faultbox/seismo/pkg/math"
)

// Orientation identifies one of the rendered faces.
type Orientation int

// Faces in the order they are built and drawn.
const (
	Top   Orientation = iota // x-z plane at the top of the box
	Left                     // y-z plane at the minimum x
	Front                    // x-y plane at the maximum depth
)

// Orientations lists every face in draw order.
var Orientations = []Orientation{Top, Left, Front}

// String returns the face name.
func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Left:
		return "left"
	case Front:
		return "front"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Stride is the number of floats stored per lattice point.
const Stride = 4

// Face is a lattice of base coordinates for one side of the box.
//
// Points are stored row-major, Stride floats each, so the point at
// (u, v) starts at (u*Cols + v)*Stride. Cols always equals the geometry
// resolution. Nothing about the topology changes after construction.
type Face struct {
	orientation Orientation
	rows, cols  int

	base      []float32
	triangles []uint32
	lines     []uint32
}

// NewFace builds the lattice and index buffers for one face.
func NewFace(o Orientation, g Geometry) (*Face, error) {
	if g.Resolution < MinResolution {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidResolution, g.Resolution, MinResolution)
	}

	res := g.Resolution
	ox, oy, oz := float64(g.Origin.X), float64(g.Origin.Y), float64(g.Origin.Z)

	// Lattice axes. X and Y span one edge, Z spans the elongated depth.
	xs := floats.Span(make([]float64, res), ox, ox+g.Size)
	ys := floats.Span(make([]float64, res), oy, oy+g.Size)
	zs := floats.Span(make([]float64, res*DepthFactor), oz, oz+g.Depth())

	var rows int
	var point func(u, v int) math.Vec4

	switch o {
	case Top:
		rows = len(zs)
		top := float32(oy + g.Size)
		point = func(u, v int) math.Vec4 {
			return math.Vec4{float32(xs[v]), top, float32(zs[u]), 0}
		}
	case Left:
		rows = len(zs)
		point = func(u, v int) math.Vec4 {
			return math.Vec4{g.Origin.X, float32(ys[v]), float32(zs[u]), 0}
		}
	case Front:
		rows = res
		front := float32(oz + g.Depth())
		point = func(u, v int) math.Vec4 {
			return math.Vec4{float32(xs[u]), float32(ys[v]), front, 0}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, int(o))
	}

	f := &Face{
		orientation: o,
		rows:        rows,
		cols:        res,
		base:        make([]float32, rows*res*Stride),
	}
	for u := 0; u < rows; u++ {
		for v := 0; v < res; v++ {
			point(u, v).Store(f.base, f.Offset(u, v))
		}
	}

	f.triangles = TriangleIndices(rows, res)
	f.lines = LineIndices(rows, res)

	return f, nil
}

// NewFaces builds the top, left and front faces of g.
func NewFaces(g Geometry) ([]*Face, error) {
	faces := make([]*Face, 0, len(Orientations))
	for _, o := range Orientations {
		f, err := NewFace(o, g)
		if err != nil {
			return nil, fmt.Errorf("building %s face: %w", o, err)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// Orientation returns which side of the box this face is.
func (f *Face) Orientation() Orientation { return f.orientation }

// Rows returns the number of lattice rows.
func (f *Face) Rows() int { return f.rows }

// Cols returns the number of lattice columns.
func (f *Face) Cols() int { return f.cols }

// Len returns the number of lattice points.
func (f *Face) Len() int { return f.rows * f.cols }

// Offset returns the float offset of point (u, v) in a face buffer.
func (f *Face) Offset(u, v int) int {
	return (u*f.cols + v) * Stride
}

// Base returns the undeformed coordinate of point (u, v).
func (f *Face) Base(u, v int) math.Vec4 {
	return math.Load(f.base, f.Offset(u, v))
}

// BufferLen returns the number of floats in a vertex buffer for this face.
func (f *Face) BufferLen() int {
	return len(f.base)
}

// CopyBase copies the base coordinates into dst and returns the number of
// floats copied.
func (f *Face) CopyBase(dst []float32) int {
	return copy(dst, f.base)
}

// Triangles returns the triangle-list indices. The slice must not be modified.
func (f *Face) Triangles() []uint32 { return f.triangles }

// Lines returns the line-list indices. The slice must not be modified.
func (f *Face) Lines() []uint32 { return f.lines }
