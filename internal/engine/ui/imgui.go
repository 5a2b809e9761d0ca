// Package ui wraps the cimgui-go SDL backend: the window, its GL context and
// the immediate-mode widgets drawn on top of the scene.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/logger"
)

// Config holds window configuration.
type Config struct {
	Title    string
	Width    int
	Height   int
	FPSLimit int
}

// Backend owns the SDL window and the ImGui context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	config  Config
}

// NewBackend creates the window and initializes OpenGL.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{config: cfg}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		// No imgui.ini next to the binary; panel layout is fixed.
		imgui.CurrentIO().SetIniFilename("")
	})

	b.backend.SetBgColor(imgui.NewVec4(0.96, 0.96, 0.96, 1.0))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		b.Destroy()
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	if cfg.FPSLimit > 0 {
		b.backend.SetTargetFPS(uint(cfg.FPSLimit))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("fps_limit", cfg.FPSLimit),
	)
	return b, nil
}

// Run starts the render loop. It returns once the window has been closed.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the render loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// Destroy releases the window and GL context of a backend whose loop never
// ran. The backend tears both down when its loop exits, so the loop is
// entered with the window already marked closed.
func (b *Backend) Destroy() {
	logger.Info("destroying window")
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
}

// Viewport returns the main viewport work area.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// DeltaTime returns the duration of the last frame in seconds.
func DeltaTime() float64 {
	return float64(imgui.CurrentIO().DeltaTime())
}
