package board

import (
	"fmt"

	"LocalWhiteboard/internal/state"
)

// minPreviewSize keeps the width preview visible at width 1.
const minPreviewSize = 2

// View is what the controls display for a tool state.
type View struct {
	Tool        state.Tool
	Color       state.Color
	Width       int
	PreviewSize int
	WidthLabel  string
	Status      string
	ShowSwatch  bool // status line color indicator
	ShowPalette bool
	CanDecrease bool
	CanIncrease bool
	Cursor      state.Cursor
}

// Reflector displays a View. Reflect must be idempotent.
type Reflector interface {
	Reflect(View)
}

// ReflectorFunc adapts a function to a Reflector.
type ReflectorFunc func(View)

func (f ReflectorFunc) Reflect(v View) { f(v) }

// Project computes the View of s.
func Project(s *state.ToolState) View {
	pen := s.Tool() == state.ToolPen
	status := fmt.Sprintf("Tool: %s", s.Tool().Label())
	if pen {
		status += " | Color: "
	}
	return View{
		Tool:        s.Tool(),
		Color:       s.Color(),
		Width:       s.Width(),
		PreviewSize: max(s.Width(), minPreviewSize),
		WidthLabel:  fmt.Sprintf("%dpx", s.Width()),
		Status:      status,
		ShowSwatch:  pen,
		ShowPalette: pen,
		CanDecrease: s.CanDecrease(),
		CanIncrease: s.CanIncrease(),
		Cursor:      s.Tool().Cursor(),
	}
}
