// Package panel draws the parameter panel: one label and one slider per
// visible tunable in the parameter store.
package panel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/noisecube/internal/params"
)

// Title of the panel window.
const Title = "Config"

// Panel widths in pixels, open and collapsed.
const (
	Width          = 230
	CollapsedWidth = 28
)

// Widgets is the immediate-mode UI surface the panel draws with.
type Widgets interface {
	// BeginPanel opens a window and reports false when it is collapsed.
	// EndPanel must be called either way.
	BeginPanel(title string, x, y, width, height float32) bool
	EndPanel()

	Text(s string)
	SliderInt(id string, v *int32, min, max int32) bool
	SliderFloat(id string, v *float32, min, max float32, format string) bool
	Checkbox(label string, v *bool) bool
}

// Panel binds store fields to widgets.
type Panel struct {
	printer   *message.Printer
	collapsed bool
}

// New creates a panel labelled in the given language (BCP 47, e.g. "en", "de").
func New(lang string) *Panel {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Panel{printer: message.NewPrinter(tag)}
}

// Collapsed reports whether the panel was collapsed on the last Draw.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// Extent returns the horizontal space the panel currently occupies.
func (p *Panel) Extent() float32 {
	if p.collapsed {
		return CollapsedWidth
	}
	return Width
}

// Draw renders the panel along the left edge and applies edits to s. It
// reports whether any value changed; s is normalized afterwards either way.
func (p *Panel) Draw(w Widgets, s *params.Store, height float32) bool {
	changed := false

	open := w.BeginPanel(p.printer.Sprintf(Title), 0, 0, Width, height)
	p.collapsed = !open
	if open {
		for _, id := range params.VisibleFields(s) {
			if p.field(w, s, id) {
				changed = true
			}
		}
	}
	w.EndPanel()

	s.Normalize()
	return changed
}

func (p *Panel) field(w Widgets, s *params.Store, id params.FieldID) bool {
	f := params.Describe(id)
	sliderID := "##" + f.Label

	switch f.Kind {
	case params.KindToggle:
		return w.Checkbox(p.printer.Sprintf(f.Label), s.Toggle(id))

	case params.KindOption:
		w.Text(p.Label(s, id))
		return w.SliderInt(sliderID, s.Int(id), 0, int32(f.Max))

	case params.KindInt:
		w.Text(p.Label(s, id))
		return w.SliderInt(sliderID, s.Int(id), int32(f.Min), int32(f.Max))

	default:
		w.Text(p.Label(s, id))
		return w.SliderFloat(sliderID, s.Float(id), float32(f.Min), float32(f.Max), f.Format)
	}
}

// Label returns the "<Label>: <value>" line shown above a field's slider.
func (p *Panel) Label(s *params.Store, id params.FieldID) string {
	f := params.Describe(id)
	name := p.printer.Sprintf(f.Label)

	switch f.Kind {
	case params.KindOption:
		return p.printer.Sprintf("%s: %s", name, p.printer.Sprintf(s.OptionName(id)))
	case params.KindInt:
		return p.printer.Sprintf("%s: %d", name, *s.Int(id))
	case params.KindToggle:
		return p.printer.Sprintf("%s: %t", name, *s.Toggle(id))
	default:
		return p.printer.Sprintf("%s: "+f.Format, name, *s.Float(id))
	}
}
