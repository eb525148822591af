package state

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrUnknownColor  = errors.New("unknown color")
	ErrInvalidWidths = errors.New("invalid stroke widths")
)

// Point is a position in surface-local logical (unscaled) pixels.
type Point struct{ X, Y float32 }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

// Tools lists every selectable tool in toolbar order.
var Tools = []Tool{ToolPen, ToolEraser}

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Label is the human readable name shown in the status line.
func (t Tool) Label() string {
	switch t {
	case ToolPen:
		return "Pen"
	case ToolEraser:
		return "Eraser"
	}
	return t.String()
}

func (t Tool) Valid() bool {
	return t == ToolPen || t == ToolEraser
}

// ParseTool maps a tool name such as "pen" or "eraser" to its Tool.
func ParseTool(name string) (Tool, error) {
	for _, t := range Tools {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Composite is the compositing mode a stroke is rasterized with.
type Composite int

const (
	SourceOver Composite = iota
	DestinationOut
)

func (c Composite) String() string {
	if c == DestinationOut {
		return "destination-out"
	}
	return "source-over"
}

// Cursor is the pointer affordance shown over the surface.
type Cursor int

const (
	CursorCrosshair Cursor = iota
	CursorEraser
)

func (t Tool) Cursor() Cursor {
	if t == ToolEraser {
		return CursorEraser
	}
	return CursorCrosshair
}
