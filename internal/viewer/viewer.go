// Package viewer runs the interactive window: input, controls, simulation
// and drawing in one loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/internal/controls"
	"github.com/Faultbox/seismo/internal/engine/camera"
	"github.com/Faultbox/seismo/internal/engine/input"
	"github.com/Faultbox/seismo/internal/engine/renderer"
	"github.com/Faultbox/seismo/internal/engine/snapshot"
	"github.com/Faultbox/seismo/internal/engine/window"
	"github.com/Faultbox/seismo/internal/logger"
	"github.com/Faultbox/seismo/internal/sim"
)

const title = "Seismo"

// Viewer owns every piece of the interactive session.
type Viewer struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	sim      *sim.Simulator
	panel    *controls.Panel
	snapshot *snapshot.Writer
	log      *zap.Logger

	paused       bool
	wantSnapshot bool
}

// New builds the simulator, opens the window and uploads the faces.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	var err error
	v.sim, err = sim.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}

	v.panel, err = controls.NewPanel(cfg, v.sim, v.sim.Registry().ActiveIndex())
	if err != nil {
		return nil, fmt.Errorf("failed to create controls: %w", err)
	}

	g := cfg.Graphics
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		VSync:      g.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context from the window
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.DefaultConfig(width, height), v.sim.Faces())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New(input.DefaultBindings)
	v.snapshot = snapshot.NewWriter(cfg.Graphics.SnapshotDir, "seismo")
	v.camera = camera.NewOrbitCamera()
	v.camera.FitToBounds(v.sim.Bounds())

	v.window.SetTitle(title + " | " + v.panel.Summary())
	v.log.Info("viewer initialized")
	return v, nil
}

// Run loops until the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting render loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			return nil
		}
		if v.handleEvents() {
			v.window.SetTitle(title + " | " + v.panel.Summary())
		}
		for _, err := range v.panel.Errors() {
			v.log.Warn("control rejected", zap.Error(err))
		}

		if !v.paused {
			v.sim.Advance(dt * v.config.Simulation.TimeScale)
		}
		for i := range v.sim.Faces() {
			v.renderer.Upload(i, v.sim.Output(i))
		}
		v.renderer.Draw(v.camera.ViewProjection(v.renderer.Aspect()))
		if v.wantSnapshot {
			v.wantSnapshot = false
			v.saveSnapshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("elapsed", v.sim.Elapsed()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// handleEvents applies this frame's events. It reports whether any
// control value changed.
func (v *Viewer) handleEvents() bool {
	changed := false
	p := v.panel

	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventMouseDrag:
			v.camera.HandleDrag(event.DeltaX, event.DeltaY)
		case input.EventMouseWheel:
			v.camera.HandleZoom(event.DeltaY)
		case input.EventKeyDown:
			changed = true
			switch event.Action {
			case input.ActionSelectNull, input.ActionSelectLove, input.ActionSelectRayleigh:
				p.Models.Press(int(event.Action - input.ActionSelectNull))
			case input.ActionVelocityUp:
				p.Nudge(p.Velocity, 1)
			case input.ActionVelocityDown:
				p.Nudge(p.Velocity, -1)
			case input.ActionPeriodUp:
				p.Nudge(p.Period, 1)
			case input.ActionPeriodDown:
				p.Nudge(p.Period, -1)
			case input.ActionDissipationUp:
				p.Nudge(p.Dissipation, 1)
			case input.ActionDissipationDown:
				p.Nudge(p.Dissipation, -1)
			case input.ActionPause:
				v.paused = !v.paused
				v.log.Info("pause toggled", zap.Bool("paused", v.paused))
			case input.ActionReset:
				v.sim.Reset()
			case input.ActionSnapshot:
				v.wantSnapshot = true
				changed = false
			default:
				changed = false
			}
		}
	}

	return changed
}

// saveSnapshot writes the frame just drawn. Failures are logged, not fatal.
func (v *Viewer) saveSnapshot() {
	pixels, width, height := v.renderer.ReadPixels()
	img, err := snapshot.FromPixels(pixels, width, height)
	if err != nil {
		v.log.Warn("snapshot failed", zap.Error(err))
		return
	}
	path, err := v.snapshot.Save(img, v.sim.Registry().Active().Kind().String())
	if err != nil {
		v.log.Warn("snapshot failed", zap.Error(err))
		return
	}
	v.log.Info("snapshot saved", zap.String("path", path))
}

// Close releases GL and SDL resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
