package states

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/noisecube/internal/panel"
	"github.com/Faultbox/noisecube/internal/scene"
)

// Key is a keyboard key the states react to.
type Key int

const (
	KeyEnter Key = iota
	KeySpace
	KeyEscape
	KeyN
	KeyF
	KeyW
)

// Input reports key presses for the current frame.
type Input interface {
	Pressed(k Key) bool
}

// Canvas is the offscreen scene target.
type Canvas interface {
	Begin(width, height int32) scene.Drawer
	End(view, proj mgl32.Mat4)
	Aspect() float32
	Texture() uint32
}

// Screen is the immediate-mode UI surface of the window.
type Screen interface {
	panel.Widgets

	// Size returns the usable window area.
	Size() (width, height float32)

	// Background draws a texture filling the given rectangle behind all windows.
	Background(x, y, width, height float32, texture uint32)

	// Overlay draws borderless text lines at a screen position.
	Overlay(x, y float32, lines []string)

	// Message draws a centered modal box.
	Message(title string, lines []string)
}
