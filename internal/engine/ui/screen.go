package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// overlayFlags is shared by the text windows that float over the scene.
const overlayFlags = imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
	imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
	imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings

// Screen draws the scene image, text overlays and panel widgets with ImGui.
type Screen struct{}

// NewScreen creates an ImGui screen. It must only be used inside Backend.Run.
func NewScreen() *Screen {
	return &Screen{}
}

// Size returns the main viewport work size.
func (s *Screen) Size() (width, height float32) {
	_, _, w, h := Viewport()
	return w, h
}

// Background draws a texture in a window that stays behind all others.
func (s *Screen) Background(x, y, w, h float32, textureID uint32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		// GL textures are bottom-up.
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// Overlay draws text lines at a fixed position.
func (s *Screen) Overlay(x, y float32, lines []string) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowBgAlpha(0.5)
	if imgui.BeginV("##Overlay", nil, overlayFlags) {
		for _, line := range lines {
			imgui.Text(line)
		}
	}
	imgui.End()
}

// Message draws a titled box centered in the viewport.
func (s *Screen) Message(title string, lines []string) {
	x, y, w, h := Viewport()

	imgui.SetNextWindowPosV(imgui.NewVec2(x+w/2, y+h/2), imgui.CondAlways, imgui.NewVec2(0.5, 0.5))
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV(title, nil, flags) {
		for _, line := range lines {
			imgui.Text(line)
		}
	}
	imgui.End()
}

// BeginPanel opens a fixed window. It reports false while the window is
// collapsed; EndPanel must be called either way.
func (s *Screen) BeginPanel(title string, x, y, w, h float32) bool {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoSavedSettings
	return imgui.BeginV(title, nil, flags)
}

// EndPanel closes the window opened by BeginPanel.
func (s *Screen) EndPanel() {
	imgui.End()
}

// Text draws one line of text.
func (s *Screen) Text(line string) {
	imgui.Text(line)
}

// SliderInt draws a full-width integer slider.
func (s *Screen) SliderInt(id string, v *int32, min, max int32) bool {
	imgui.SetNextItemWidth(-1)
	return imgui.SliderIntV(id, v, min, max, "%d", imgui.SliderFlagsAlwaysClamp)
}

// SliderFloat draws a full-width float slider.
func (s *Screen) SliderFloat(id string, v *float32, min, max float32, format string) bool {
	imgui.SetNextItemWidth(-1)
	return imgui.SliderFloatV(id, v, min, max, format, imgui.SliderFlagsAlwaysClamp)
}

// Checkbox draws a labelled checkbox.
func (s *Screen) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
