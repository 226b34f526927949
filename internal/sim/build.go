package sim

import (
	"fmt"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
	"github.com/Faultbox/seismo/pkg/wave"
)

// FromConfig builds the model set, the faces and the simulator described
// by cfg.
func FromConfig(cfg *config.Config) (*Simulator, error) {
	w := cfg.Wave
	params, err := wave.NewParameters(w.Amplitude, w.Velocity, w.Period, w.Dissipation)
	if err != nil {
		return nil, fmt.Errorf("wave parameters: %w", err)
	}

	models, err := wave.DefaultModels(cfg.Geometry.Size)
	if err != nil {
		return nil, fmt.Errorf("wave models: %w", err)
	}
	registry, err := wave.NewRegistry(params, models...)
	if err != nil {
		return nil, err
	}

	kind, err := wave.ParseKind(w.Model)
	if err != nil {
		return nil, err
	}
	if err := registry.SelectKind(kind); err != nil {
		return nil, err
	}

	preset, err := grid.ParsePreset(cfg.Geometry.Preset)
	if err != nil {
		return nil, err
	}
	o := cfg.Geometry.Origin
	geom, err := grid.NewGeometry(preset, cfg.Geometry.Size, cfg.Geometry.Resolution,
		math.Vec3{X: o[0], Y: o[1], Z: o[2]})
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	faces, err := grid.NewFaces(geom)
	if err != nil {
		return nil, err
	}

	return New(registry, faces, Options{
		Parallel: cfg.Simulation.Parallel,
		Workers:  cfg.Simulation.Workers,
	})
}
