// seismotool evaluates wave models and simulation frames without a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/internal/logger"
	"github.com/Faultbox/seismo/internal/sim"
	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
	"github.com/Faultbox/seismo/pkg/wave"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "eval":
		cmdEval(args)
	case "frame":
		cmdFrame(args)
	case "bench":
		cmdBench(args)
	case "config":
		cmdConfig(args)
	case "check":
		cmdCheck(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`seismotool - seismic wave grid utility

Usage:
  seismotool <command> [options]

Commands:
  eval  -x X -y Y -z Z [-t T]     Displacement of one point
  frame [-t T] [-yaml]            Per-face displacement statistics at time T
  bench [-frames N]               Time sequential and parallel updates
  config [-save path]             Print (or write) the effective configuration
  check                           Print the material constants and wave speeds

Every command accepts -config <file> and -model <null|love|rayleigh>.

Examples:
  seismotool eval -model love -y 0.5 -z 0
  seismotool frame -model rayleigh -t 1.5 -yaml
  seismotool bench -frames 200 -config seismo.yaml`)
}

// commonFlags registers the flags every command shares.
type commonFlags struct {
	config  *string
	model   *string
	verbose *bool
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, commonFlags{
		config:  fs.String("config", "", "Path to config file"),
		model:   fs.String("model", "", "Wave model (null, love, rayleigh)"),
		verbose: fs.Bool("v", false, "Log simulator events to stderr"),
	}
}

// load reads the configuration and applies the shared overrides.
func (c commonFlags) load() *config.Config {
	cfg, err := config.LoadFile(*c.config)
	if err != nil {
		fatalf("%v", err)
	}
	if *c.model != "" {
		cfg.Wave.Model = *c.model
	}
	if *c.verbose {
		if err := logger.Init("debug", ""); err != nil {
			fatalf("logger: %v", err)
		}
	}
	return cfg
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newSimulator(cfg *config.Config) *sim.Simulator {
	s, err := sim.FromConfig(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	return s
}

func cmdEval(args []string) {
	fs, common := newFlagSet("eval")
	x := fs.Float64("x", 0, "X coordinate")
	y := fs.Float64("y", 0, "Y coordinate")
	z := fs.Float64("z", 0, "Z coordinate")
	t := fs.Float64("t", 0, "Time")
	fs.Parse(args)

	cfg := common.load()
	s := newSimulator(cfg)
	defer logger.Sync()

	coord := math.Vec4{float32(*x), float32(*y), float32(*z), 0}
	d := s.Registry().Displacement(coord, *t)

	fmt.Printf("Model:        %s\n", s.Registry().Active().Kind())
	fmt.Printf("Point:        (%g, %g, %g) at t=%g\n", *x, *y, *z, *t)
	fmt.Printf("Displacement: (%g, %g, %g)\n", d[math.X], d[math.Y], d[math.Z])
}

// FaceStats summarizes the displacement magnitudes of one face.
type FaceStats struct {
	Face   string  `yaml:"face"`
	Points int     `yaml:"points"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Mean   float64 `yaml:"mean"`
}

// FrameStats is the report printed by the frame command.
type FrameStats struct {
	Model string      `yaml:"model"`
	Time  float64     `yaml:"time"`
	Faces []FaceStats `yaml:"faces"`
}

func cmdFrame(args []string) {
	fs, common := newFlagSet("frame")
	t := fs.Float64("t", 0, "Time")
	asYAML := fs.Bool("yaml", false, "Print as YAML")
	fs.Parse(args)

	cfg := common.load()
	s := newSimulator(cfg)
	defer logger.Sync()

	s.Update(*t)
	report := FrameStats{
		Model: s.Registry().Active().Kind().String(),
		Time:  *t,
	}
	for i, f := range s.Faces() {
		report.Faces = append(report.Faces, faceStats(f, s.Output(i)))
	}

	if *asYAML {
		data, err := yaml.Marshal(report)
		if err != nil {
			fatalf("%v", err)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Printf("Model: %s  t=%g\n", report.Model, report.Time)
	fmt.Printf("  %-6s %8s %12s %12s %12s\n", "face", "points", "min", "max", "mean")
	for _, st := range report.Faces {
		fmt.Printf("  %-6s %8d %12.6f %12.6f %12.6f\n", st.Face, st.Points, st.Min, st.Max, st.Mean)
	}
}

// faceStats measures how far every output point moved from its base.
func faceStats(f *grid.Face, out []float32) FaceStats {
	mags := make([]float64, 0, f.Len())
	for u := 0; u < f.Rows(); u++ {
		for v := 0; v < f.Cols(); v++ {
			d := math.Load(out, f.Offset(u, v)).Vec3().Sub(f.Base(u, v).Vec3())
			mags = append(mags, float64(d.Length()))
		}
	}
	return FaceStats{
		Face:   f.Orientation().String(),
		Points: len(mags),
		Min:    floats.Min(mags),
		Max:    floats.Max(mags),
		Mean:   floats.Sum(mags) / float64(len(mags)),
	}
}

func cmdBench(args []string) {
	fs, common := newFlagSet("bench")
	frames := fs.Int("frames", 100, "Number of updates per mode")
	workers := fs.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	fs.Parse(args)

	if *frames < 1 {
		fatalf("frames must be positive")
	}

	cfg := common.load()
	defer logger.Sync()

	fmt.Printf("Model: %s  resolution=%d  frames=%d\n", cfg.Wave.Model, cfg.Geometry.Resolution, *frames)
	for _, parallel := range []bool{false, true} {
		cfg.Simulation.Parallel = parallel
		cfg.Simulation.Workers = *workers
		s := newSimulator(cfg)

		start := time.Now()
		for i := 0; i < *frames; i++ {
			s.Advance(1.0 / 60)
		}
		elapsed := time.Since(start)

		mode := "sequential"
		if parallel {
			mode = "parallel"
		}
		fmt.Printf("  %-10s %10s total  %10s/frame\n", mode, elapsed.Round(time.Microsecond),
			(elapsed / time.Duration(*frames)).Round(time.Microsecond))
	}
}

func cmdConfig(args []string) {
	fs, common := newFlagSet("config")
	save := fs.String("save", "", "Write the configuration to this path")
	fs.Parse(args)

	cfg := common.load()

	if *save != "" {
		if err := cfg.SaveTo(*save); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Saved %s\n", *save)
		return
	}

	data, err := cfg.Marshal()
	if err != nil {
		fatalf("%v", err)
	}
	os.Stdout.Write(data)
}

func cmdCheck(args []string) {
	fs, common := newFlagSet("check")
	fs.Parse(args)

	common.load()
	m := wave.DefaultMaterial()

	fmt.Printf("Material: E=%g  rho=%g  nu=%g\n", m.YoungModulus, m.Density, m.PoissonRatio)
	if err := m.Validate(); err != nil {
		fatalf("%v", err)
	}

	lambda, mu := m.Lame()
	speeds, err := m.Speeds()
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Lame:     lambda=%.6f  mu=%.6f\n", lambda, mu)
	fmt.Printf("ThetaR:   %.6f\n", m.ThetaR())
	fmt.Printf("Speeds:   cL=%.6f  cT=%.6f  c=%.6f\n", speeds.Longitudinal, speeds.Transversal, speeds.Rayleigh)
	fmt.Printf("Decay:    qR=%.6f  sR=%.6f\n", speeds.QR, speeds.SR)
	fmt.Println("OK")
}
