package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/logger"
	"github.com/Faultbox/noisecube/internal/panel"
	"github.com/Faultbox/noisecube/internal/params"
	"github.com/Faultbox/noisecube/internal/scene"
)

// RunningConfig contains configuration for the running state.
type RunningConfig struct {
	ShowFPS bool
}

// RunningState draws the animated cube with the parameter panel.
type RunningState struct {
	config   RunningConfig
	manager  *Manager
	store    *params.Store
	renderer *scene.Renderer
	panel    *panel.Panel
	canvas   Canvas
	screen   Screen
	input    Input

	// Frame timing
	fps        float64
	frameCount int
	fpsTimer   float64

	// Last frame
	Stats scene.Stats
}

// NewRunningState creates the running state.
func NewRunningState(cfg RunningConfig, manager *Manager, store *params.Store, r *scene.Renderer, p *panel.Panel, canvas Canvas, screen Screen, input Input) *RunningState {
	return &RunningState{
		config:   cfg,
		manager:  manager,
		store:    store,
		renderer: r,
		panel:    p,
		canvas:   canvas,
		screen:   screen,
		input:    input,
	}
}

func (s *RunningState) ID() ID { return Running }

// Enter is called when entering this state.
func (s *RunningState) Enter() error {
	logger.Info("entering running state",
		zap.Float32s("cube", s.store.CubeSize[:]),
		zap.String("noise", s.store.OptionName(params.FieldNoiseType)),
		zap.Int32("seed", s.store.Seed))
	return nil
}

// Exit is called when leaving this state.
func (s *RunningState) Exit() error {
	logger.Info("leaving running state", zap.Float64("w", s.renderer.W))
	return nil
}

// Update handles keyboard shortcuts and frame timing. Escape quits.
func (s *RunningState) Update(dt float64) error {
	if s.input.Pressed(KeyEscape) {
		logger.Info("quit requested")
		return s.manager.Change(terminatedState{})
	}

	shortcuts := []struct {
		key Key
		id  params.FieldID
	}{
		{KeyN, params.FieldNoiseType},
		{KeyF, params.FieldFractalType},
		{KeyW, params.FieldWarpType},
	}
	for _, sc := range shortcuts {
		if s.input.Pressed(sc.key) {
			s.store.Cycle(sc.id, 1)
			logger.Debug("cycled option",
				zap.String("field", params.Describe(sc.id).Label),
				zap.String("value", s.store.OptionName(sc.id)))
		}
	}

	s.frameCount++
	s.fpsTimer += dt
	if s.fpsTimer >= 1 {
		s.fps = float64(s.frameCount) / s.fpsTimer
		logger.Debug("frame stats",
			zap.Float64("fps", s.fps),
			zap.Float64("w", s.renderer.W),
			zap.Int("visited", s.Stats.Visited),
			zap.Int("drawn", s.Stats.Drawn))
		s.frameCount = 0
		s.fpsTimer = 0
	}
	return nil
}

// Render draws one frame: the scene image behind everything, the panel,
// then the cube shell and the stats overlay.
func (s *RunningState) Render() error {
	width, height := s.screen.Size()
	s.screen.Background(0, 0, width, height, s.canvas.Texture())

	s.panel.Draw(s.screen, s.store, height)

	d := s.canvas.Begin(int32(width), int32(height))
	s.Stats = s.renderer.Frame(s.store, d)
	cam := s.renderer.Camera
	s.canvas.End(cam.ViewMatrix(), cam.Projection(s.canvas.Aspect()))

	s.screen.Overlay(s.panel.Extent()+10, 10, s.overlayLines())
	return nil
}

// FPS returns the frame rate measured over the last full second.
func (s *RunningState) FPS() float64 {
	return s.fps
}

func (s *RunningState) overlayLines() []string {
	var lines []string
	if s.config.ShowFPS {
		lines = append(lines, fmt.Sprintf("%.0f FPS", s.fps))
	}
	return append(lines,
		fmt.Sprintf("w: %.0f", s.renderer.W),
		fmt.Sprintf("cells: %d / %d", s.Stats.Drawn, s.Stats.Visited),
	)
}
