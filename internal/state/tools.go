package state

import (
	"fmt"
	"slices"
)

// DefaultWidths are the selectable stroke widths in logical pixels.
var DefaultWidths = []int{1, 2, 3, 5, 8, 12, 16}

// DefaultWidthIndex selects a width of 3 in DefaultWidths.
const DefaultWidthIndex = 2

// ToolState is the active tool, color and stroke width of a board.
// The width is stored as an index into a fixed ascending list and is
// always clamped to that list.
type ToolState struct {
	tool    Tool
	color   Color
	palette []Color
	widths  []int
	index   int
}

// NewToolState starts with the pen tool, the given color and width index.
func NewToolState(widths []int, palette []Color, c Color, index int) (*ToolState, error) {
	if err := ValidateWidths(widths); err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrUnknownColor)
	}
	for _, p := range palette {
		if _, err := p.NRGBA(); err != nil {
			return nil, err
		}
	}
	if !slices.Contains(palette, c) {
		return nil, fmt.Errorf("%w: %q is not in the palette", ErrUnknownColor, string(c))
	}
	if index < 0 || index >= len(widths) {
		return nil, fmt.Errorf("%w: default index %d out of range", ErrInvalidWidths, index)
	}
	return &ToolState{
		tool:    ToolPen,
		color:   c,
		palette: slices.Clone(palette),
		widths:  slices.Clone(widths),
		index:   index,
	}, nil
}

// ValidateWidths requires a non-empty, strictly ascending list of positive widths.
func ValidateWidths(widths []int) error {
	if len(widths) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidWidths)
	}
	for i, w := range widths {
		if w <= 0 {
			return fmt.Errorf("%w: width %d is not positive", ErrInvalidWidths, w)
		}
		if i > 0 && w <= widths[i-1] {
			return fmt.Errorf("%w: %d does not follow %d", ErrInvalidWidths, w, widths[i-1])
		}
	}
	return nil
}

func (s *ToolState) Tool() Tool       { return s.tool }
func (s *ToolState) Color() Color     { return s.color }
func (s *ToolState) Palette() []Color { return slices.Clone(s.palette) }
func (s *ToolState) Widths() []int    { return slices.Clone(s.widths) }
func (s *ToolState) WidthIndex() int  { return s.index }
func (s *ToolState) Width() int       { return s.widths[s.index] }

// SetTool rejects tools outside the fixed set and leaves the state unchanged.
func (s *ToolState) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownTool, t)
	}
	s.tool = t
	return nil
}

// SetColor rejects colors that are not in the palette.
func (s *ToolState) SetColor(c Color) error {
	if !slices.Contains(s.palette, c) {
		return fmt.Errorf("%w: %q", ErrUnknownColor, string(c))
	}
	s.color = c
	return nil
}

// StepWidth moves the width index by delta, clamped to the list bounds.
// It reports whether the index changed.
func (s *ToolState) StepWidth(delta int) bool {
	next := max(0, min(len(s.widths)-1, s.index+delta))
	changed := next != s.index
	s.index = next
	return changed
}

func (s *ToolState) CanDecrease() bool { return s.index > 0 }
func (s *ToolState) CanIncrease() bool { return s.index < len(s.widths)-1 }

// Composite is the compositing mode for strokes started with the current tool.
func (s *ToolState) Composite() Composite {
	if s.tool == ToolEraser {
		return DestinationOut
	}
	return SourceOver
}
