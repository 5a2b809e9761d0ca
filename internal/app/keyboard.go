package app

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/noisecube/internal/app/states"
	"github.com/Faultbox/noisecube/internal/engine/ui"
)

var keyMap = map[states.Key]imgui.Key{
	states.KeyEnter:  imgui.KeyEnter,
	states.KeySpace:  imgui.KeySpace,
	states.KeyEscape: imgui.KeyEscape,
	states.KeyN:      imgui.KeyN,
	states.KeyF:      imgui.KeyF,
	states.KeyW:      imgui.KeyW,
}

// keyboard reads key presses from ImGui. Presses are ignored while a text
// widget wants the keyboard.
type keyboard struct{}

func (keyboard) Pressed(k states.Key) bool {
	key, ok := keyMap[k]
	if !ok || imgui.CurrentIO().WantTextInput() {
		return false
	}
	return ui.IsKeyPressed(key)
}
