package board

import (
	"slices"

	"LocalWhiteboard/internal/state"
)

// Config is the fixed tool configuration of a board.
type Config struct {
	Widths       []int
	Palette      []state.Color
	DefaultColor state.Color
	DefaultWidth int // index into Widths
}

func DefaultConfig() Config {
	return Config{
		Widths:       slices.Clone(state.DefaultWidths),
		Palette:      slices.Clone(state.DefaultPalette),
		DefaultColor: state.DefaultColor,
		DefaultWidth: state.DefaultWidthIndex,
	}
}

// Validate reports the first problem that would prevent a board from starting.
func (c Config) Validate() error {
	_, err := c.toolState()
	return err
}

func (c Config) toolState() (*state.ToolState, error) {
	return state.NewToolState(c.Widths, c.Palette, c.DefaultColor, c.DefaultWidth)
}
