// Package sim drives the per-tick evaluation of the active wave model over
// every lattice point of every face.
package sim

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/seismo/internal/logger"
	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
	"github.com/Faultbox/seismo/pkg/wave"
)

var (
	ErrNoRegistry = errors.New("simulator needs a model registry")
	ErrNoFaces    = errors.New("simulator needs at least one face")
)

// Options controls how Update evaluates the lattice.
type Options struct {
	Parallel bool
	Workers  int // 0 = runtime.GOMAXPROCS
}

// Simulator owns the model registry, the faces and one output buffer per
// face. Output buffers share the face's layout and are overwritten by
// every Update.
//
// Parameter setters and Update must not run concurrently; callers change
// parameters between ticks.
type Simulator struct {
	registry *wave.Registry
	faces    []*grid.Face
	output   [][]float32
	elapsed  float64
	opts     Options
	log      *zap.Logger
}

// New creates a simulator. Output buffers start as copies of the base
// coordinates.
func New(registry *wave.Registry, faces []*grid.Face, opts Options) (*Simulator, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	s := &Simulator{
		registry: registry,
		faces:    faces,
		output:   make([][]float32, len(faces)),
		opts:     opts,
		log:      logger.Named("sim"),
	}
	for i, f := range faces {
		s.output[i] = make([]float32, f.BufferLen())
		f.CopyBase(s.output[i])
	}

	points := 0
	for _, f := range faces {
		points += f.Len()
	}
	s.log.Info("simulator ready",
		zap.Int("faces", len(faces)),
		zap.Int("points", points),
		zap.Stringer("model", registry.Active().Kind()),
		zap.Bool("parallel", opts.Parallel),
		zap.Int("workers", opts.Workers),
	)

	return s, nil
}

// Update writes base + displacement(t) for every point of every face.
func (s *Simulator) Update(t float64) {
	if !s.opts.Parallel {
		for i, f := range s.faces {
			s.evaluateRows(f, s.output[i], 0, f.Rows(), t)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for i, f := range s.faces {
		out := s.output[i]
		chunk := rowsPerTask(f.Rows(), s.opts.Workers)
		for start := 0; start < f.Rows(); start += chunk {
			end := min(start+chunk, f.Rows())
			g.Go(func() error {
				s.evaluateRows(f, out, start, end, t)
				return nil
			})
		}
	}
	// Evaluation cannot fail; Wait is the fence before buffers are read.
	_ = g.Wait()
}

// evaluateRows fills rows [start, end) of one face.
func (s *Simulator) evaluateRows(f *grid.Face, out []float32, start, end int, t float64) {
	for u := start; u < end; u++ {
		for v := 0; v < f.Cols(); v++ {
			base := f.Base(u, v)
			p := base.Add(s.registry.Displacement(base, t))
			p[math.W] = 0
			p.Store(out, f.Offset(u, v))
		}
	}
}

// rowsPerTask splits rows into roughly two tasks per worker.
func rowsPerTask(rows, workers int) int {
	tasks := workers * 2
	if tasks < 1 {
		tasks = 1
	}
	chunk := (rows + tasks - 1) / tasks
	if chunk < 1 {
		chunk = 1
	}
	return chunk
}

// Advance moves the simulation clock by dt and evaluates at the new time.
// It returns the elapsed time.
func (s *Simulator) Advance(dt float64) float64 {
	s.elapsed += dt
	s.Update(s.elapsed)
	return s.elapsed
}

// Elapsed returns the simulation clock.
func (s *Simulator) Elapsed() float64 {
	return s.elapsed
}

// Reset rewinds the clock and restores every output to its base coordinates.
func (s *Simulator) Reset() {
	s.elapsed = 0
	for i, f := range s.faces {
		f.CopyBase(s.output[i])
	}
}

// Faces returns the faces in draw order.
func (s *Simulator) Faces() []*grid.Face {
	return s.faces
}

// Output returns the vertex buffer of face i. The slice is reused by the
// next Update.
func (s *Simulator) Output(i int) []float32 {
	return s.output[i]
}

// Bounds returns the extent of the undeformed lattice over all faces.
func (s *Simulator) Bounds() grid.Bounds {
	first := s.faces[0].Base(0, 0).Vec3()
	b := grid.Bounds{Min: first, Max: first}
	for _, f := range s.faces {
		for u := 0; u < f.Rows(); u++ {
			for v := 0; v < f.Cols(); v++ {
				p := f.Base(u, v)
				b.Min.X = min(b.Min.X, p[math.X])
				b.Min.Y = min(b.Min.Y, p[math.Y])
				b.Min.Z = min(b.Min.Z, p[math.Z])
				b.Max.X = max(b.Max.X, p[math.X])
				b.Max.Y = max(b.Max.Y, p[math.Y])
				b.Max.Z = max(b.Max.Z, p[math.Z])
			}
		}
	}
	return b
}

// Registry returns the model registry.
func (s *Simulator) Registry() *wave.Registry {
	return s.registry
}
