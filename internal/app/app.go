// Package app wires the window, renderer, parameter store and states into
// the frame loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/app/states"
	"github.com/Faultbox/noisecube/internal/config"
	"github.com/Faultbox/noisecube/internal/engine/renderer"
	"github.com/Faultbox/noisecube/internal/engine/ui"
	"github.com/Faultbox/noisecube/internal/logger"
	"github.com/Faultbox/noisecube/internal/panel"
	"github.com/Faultbox/noisecube/internal/params"
	"github.com/Faultbox/noisecube/internal/scene"
)

// window is the platform window driving the frame loop.
type window interface {
	Run(frame func())
	Close()
	Destroy()
}

// canvas is the GL scene target.
type canvas interface {
	states.Canvas
	Close()
}

// Constructors for the GL-backed collaborators.
var (
	openWindow = func(cfg ui.Config) (window, error) {
		return ui.NewBackend(cfg)
	}
	openCanvas = func(cfg renderer.Config) (canvas, error) {
		return renderer.New(cfg)
	}
)

// App is the running program.
type App struct {
	config   *config.Config
	backend  window
	renderer canvas
	manager  *states.Manager
	store    *params.Store
	scene    *scene.Renderer
}

// New creates the window and every component. The returned App must be closed.
func New(cfg *config.Config) (*App, error) {
	store, err := params.FromConfig(cfg.Scene, cfg.Noise)
	if err != nil {
		return nil, fmt.Errorf("invalid noise settings: %w", err)
	}

	a := &App{
		config: cfg,
		store:  store,
		scene:  newScene(store, cfg.Scene),
	}

	a.backend, err = openWindow(ui.Config{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		FPSLimit: cfg.Window.FPSLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the backend.
	a.renderer, err = openCanvas(renderer.Config{
		Width:  int32(cfg.Window.Width),
		Height: int32(cfg.Window.Height),
		Clear:  renderer.DefaultClear,
	})
	if err != nil {
		a.backend.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.manager = newManager(cfg, store, a.scene, a.renderer, ui.NewScreen(), keyboard{})

	logger.Info("application initialized",
		zap.String("noise", store.OptionName(params.FieldNoiseType)),
		zap.Int32("seed", store.Seed),
		zap.Bool("content_warning", cfg.Scene.ContentWarning),
	)
	return a, nil
}

// newScene creates the scene renderer with the camera and w settings from cfg.
func newScene(store *params.Store, cfg config.SceneConfig) *scene.Renderer {
	r := scene.New(store)
	r.WStep = cfg.WStep
	r.Camera.FovBase = cfg.FovBase
	r.Camera.Step = cfg.OrbitStepDeg
	r.Camera.Smoothing = cfg.ZoomSmoothing
	return r
}

// newManager builds the state machine and schedules its first state.
func newManager(cfg *config.Config, store *params.Store, r *scene.Renderer, canvas states.Canvas, screen states.Screen, input states.Input) *states.Manager {
	m := states.NewManager()
	running := states.NewRunningState(
		states.RunningConfig{ShowFPS: cfg.UI.ShowFPS}, m,
		store, r, panel.New(cfg.UI.Language), canvas, screen, input,
	)

	var first states.State = running
	if cfg.Scene.ContentWarning {
		first = states.NewWarningState(m, screen, input, running)
	}
	// The manager is empty, so the first change cannot fail.
	_ = m.Change(first)
	return m
}

// Run runs the frame loop until the window is closed or the state machine
// terminates.
func (a *App) Run() error {
	var frameErr error

	logger.Info("starting frame loop")
	a.backend.Run(func() {
		if frameErr != nil || a.manager.Terminated() {
			return
		}
		if frameErr = a.frame(ui.DeltaTime()); frameErr != nil || a.manager.Terminated() {
			a.backend.Close()
		}
	})

	// Window closed by the user.
	if err := a.manager.Terminate(); err != nil && frameErr == nil {
		frameErr = err
	}
	logger.Info("frame loop stopped", zap.Stringer("state", a.manager.Current().ID()))
	return frameErr
}

func (a *App) frame(dt float64) error {
	if err := a.manager.Update(dt); err != nil {
		return fmt.Errorf("update error: %w", err)
	}
	if err := a.manager.Render(); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

// Close releases GL resources.
func (a *App) Close() {
	logger.Info("closing application")
	if a.renderer != nil {
		a.renderer.Close()
	}
}
