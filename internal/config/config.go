// Package config handles simulation configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/wave"
)

// Config holds all settings.
type Config struct {
	Wave       WaveConfig       `yaml:"wave"`
	Geometry   GeometryConfig   `yaml:"geometry"`
	Simulation SimulationConfig `yaml:"simulation"`
	Controls   ControlsConfig   `yaml:"controls"`
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WaveConfig holds the initial wave parameters and model selection.
type WaveConfig struct {
	Model       string  `yaml:"model"`
	Amplitude   float64 `yaml:"amplitude"`
	Velocity    float64 `yaml:"velocity"`
	Period      float64 `yaml:"period"`
	Dissipation float64 `yaml:"dissipation"`
}

// GeometryConfig describes the simulated box.
type GeometryConfig struct {
	Preset     string     `yaml:"preset"`
	Size       float64    `yaml:"size"`
	Resolution int        `yaml:"resolution"`
	Origin     [3]float32 `yaml:"origin"` // Only used by the anchored preset
}

// SimulationConfig holds evaluation loop settings.
type SimulationConfig struct {
	Parallel  bool    `yaml:"parallel"`
	Workers   int     `yaml:"workers"`    // 0 = one per CPU
	TimeScale float64 `yaml:"time_scale"` // Multiplier applied to wall-clock frame time
}

// Range bounds one slider.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ControlsConfig holds slider ranges for the interactive viewer.
type ControlsConfig struct {
	Velocity    Range   `yaml:"velocity"`
	Period      Range   `yaml:"period"`
	Dissipation Range   `yaml:"dissipation"`
	KeyStep     float64 `yaml:"key_step"` // Fraction of a range moved per key press
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	SnapshotDir string `yaml:"snapshot_dir"` // Empty = working directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Wave: WaveConfig{
			Model:       wave.KindLove.String(),
			Amplitude:   0.1,
			Velocity:    2.0,
			Period:      0.5,
			Dissipation: 1.0,
		},
		Geometry: GeometryConfig{
			Preset:     grid.PresetCentered.String(),
			Size:       1.0,
			Resolution: 20,
			Origin:     [3]float32{-0.5, -0.5, -2.5},
		},
		Simulation: SimulationConfig{
			Parallel:  false,
			Workers:   0,
			TimeScale: 1.0,
		},
		Controls: ControlsConfig{
			Velocity:    Range{Min: -5, Max: 5},
			Period:      Range{Min: 0.1, Max: 2},
			Dissipation: Range{Min: 0, Max: 5},
			KeyStep:     0.02,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if _, e := wave.ParseKind(c.Wave.Model); e != nil {
		err = multierr.Append(err, fmt.Errorf("wave.model: %w", e))
	}
	if c.Wave.Period == 0 {
		err = multierr.Append(err, fmt.Errorf("wave.period: %w: must be non-zero", wave.ErrInvalidParameter))
	}
	if c.Wave.Amplitude < 0 {
		err = multierr.Append(err, fmt.Errorf("wave.amplitude: %w: %g is negative", wave.ErrInvalidParameter, c.Wave.Amplitude))
	}

	if _, e := grid.ParsePreset(c.Geometry.Preset); e != nil {
		err = multierr.Append(err, fmt.Errorf("geometry.preset: %w", e))
	}
	if c.Geometry.Resolution < grid.MinResolution {
		err = multierr.Append(err, fmt.Errorf("geometry.resolution: %w: %d", grid.ErrInvalidResolution, c.Geometry.Resolution))
	}
	if !(c.Geometry.Size > 0) {
		err = multierr.Append(err, fmt.Errorf("geometry.size: %w: %g", grid.ErrInvalidSize, c.Geometry.Size))
	}

	if c.Simulation.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.workers: %d is negative", c.Simulation.Workers))
	}

	for name, r := range map[string]Range{
		"velocity":    c.Controls.Velocity,
		"period":      c.Controls.Period,
		"dissipation": c.Controls.Dissipation,
	} {
		if !(r.Max > r.Min) {
			err = multierr.Append(err, fmt.Errorf("controls.%s: max %g must exceed min %g", name, r.Max, r.Min))
		}
	}
	if c.Controls.Period.Min <= 0 && c.Controls.Period.Max >= 0 {
		err = multierr.Append(err, fmt.Errorf("controls.period: range [%g, %g] contains zero",
			c.Controls.Period.Min, c.Controls.Period.Max))
	}

	return err
}
