// Package renderer draws the voxel cube with OpenGL into an offscreen target.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/engine/framebuffer"
	"github.com/Faultbox/noisecube/internal/logger"
	"github.com/Faultbox/noisecube/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int32
	Height int32

	// Background color, RGBA in [0, 1]
	Clear [4]float32
}

// DefaultClear is the light gray background behind the cube.
var DefaultClear = [4]float32{245.0 / 255, 245.0 / 255, 245.0 / 255, 1}

// Renderer owns the cube batch and the framebuffer it is drawn into.
type Renderer struct {
	config Config
	target *framebuffer.Framebuffer
	batch  *CubeBatch
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created and gl.Init has run.
func New(cfg Config) (*Renderer, error) {
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	target, err := framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	batch, err := NewCubeBatch()
	if err != nil {
		target.Destroy()
		return nil, fmt.Errorf("failed to create cube batch: %w", err)
	}

	return &Renderer{config: cfg, target: target, batch: batch}, nil
}

// Begin resizes the target if needed and returns an empty drawer for the frame.
func (r *Renderer) Begin(width, height int32) scene.Drawer {
	if w, h := r.target.Size(); w != width || h != height {
		r.target.Resize(width, height)
		logger.Debug("render target resized",
			zap.Int32("width", width),
			zap.Int32("height", height),
		)
	}
	r.batch.Reset()
	return r.batch
}

// End draws the queued cubes into the target.
func (r *Renderer) End(view, proj mgl32.Mat4) {
	r.target.Render(r.config.Clear, func() {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		r.batch.Flush(view, proj)
		gl.Disable(gl.DEPTH_TEST)
	})
}

// Aspect returns the target's aspect ratio.
func (r *Renderer) Aspect() float32 {
	return r.target.Aspect()
}

// Texture returns the color texture holding the last rendered frame.
func (r *Renderer) Texture() uint32 {
	return r.target.ColorTexture()
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.batch.Close()
	r.target.Destroy()
}
