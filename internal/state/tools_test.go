package state

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultTools(t *testing.T) *ToolState {
	t.Helper()
	s, err := NewToolState(DefaultWidths, DefaultPalette, DefaultColor, DefaultWidthIndex)
	require.NoError(t, err)
	return s
}

func TestNewToolStateDefaults(t *testing.T) {
	s := newDefaultTools(t)
	assert.Equal(t, ToolPen, s.Tool())
	assert.Equal(t, DefaultColor, s.Color())
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, SourceOver, s.Composite())
}

func TestNewToolStateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		widths  []int
		palette []Color
		color   Color
		index   int
		want    error
	}{
		{"empty widths", nil, DefaultPalette, DefaultColor, 0, ErrInvalidWidths},
		{"descending widths", []int{3, 2, 1}, DefaultPalette, DefaultColor, 0, ErrInvalidWidths},
		{"duplicate widths", []int{1, 2, 2}, DefaultPalette, DefaultColor, 0, ErrInvalidWidths},
		{"zero width", []int{0, 1}, DefaultPalette, DefaultColor, 0, ErrInvalidWidths},
		{"index out of range", DefaultWidths, DefaultPalette, DefaultColor, 7, ErrInvalidWidths},
		{"negative index", DefaultWidths, DefaultPalette, DefaultColor, -1, ErrInvalidWidths},
		{"empty palette", DefaultWidths, nil, DefaultColor, 0, ErrUnknownColor},
		{"unparseable palette entry", DefaultWidths, []Color{"#2563eb", "blue"}, DefaultColor, 0, ErrUnknownColor},
		{"default color outside palette", DefaultWidths, DefaultPalette, "#123456", 0, ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewToolState(tt.widths, tt.palette, tt.color, tt.index)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStepWidthClamps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := len(DefaultWidths)
	for start := 0; start < n; start++ {
		s, err := NewToolState(DefaultWidths, DefaultPalette, DefaultColor, start)
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			delta := 1
			if rng.Intn(2) == 0 {
				delta = -1
			}
			before := s.WidthIndex()
			changed := s.StepWidth(delta)
			idx := s.WidthIndex()
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
			if before == 0 && delta < 0 || before == n-1 && delta > 0 {
				require.False(t, changed)
				require.Equal(t, before, idx)
			}
			require.Equal(t, idx > 0, s.CanDecrease())
			require.Equal(t, idx < n-1, s.CanIncrease())
			require.Equal(t, DefaultWidths[idx], s.Width())
		}
	}
}

func TestStepWidthDecrementToFloor(t *testing.T) {
	s := newDefaultTools(t)
	s.StepWidth(-1)
	s.StepWidth(-1)
	assert.Equal(t, 0, s.WidthIndex())
	assert.Equal(t, 1, s.Width())
	assert.False(t, s.CanDecrease())
	assert.True(t, s.CanIncrease())

	assert.False(t, s.StepWidth(-1))
	assert.Equal(t, 0, s.WidthIndex())
}

func TestSetToolAndColorValidate(t *testing.T) {
	s := newDefaultTools(t)

	require.NoError(t, s.SetTool(ToolEraser))
	assert.Equal(t, DestinationOut, s.Composite())

	err := s.SetTool(Tool(9))
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.Equal(t, ToolEraser, s.Tool())

	require.NoError(t, s.SetColor("#dc2626"))
	err = s.SetColor("#abcdef")
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Equal(t, Color("#dc2626"), s.Color())
}

func TestParseTool(t *testing.T) {
	tool, err := ParseTool("eraser")
	require.NoError(t, err)
	assert.Equal(t, ToolEraser, tool)

	_, err = ParseTool("brush")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestColorNRGBA(t *testing.T) {
	c, err := DefaultColor.NRGBA()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x25), c.R)
	assert.Equal(t, uint8(0x63), c.G)
	assert.Equal(t, uint8(0xeb), c.B)
	assert.Equal(t, uint8(0xff), c.A)

	_, err = Color("not-a-color").NRGBA()
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestNRGBAOrBlack(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}, Color("#dc2626").NRGBAOrBlack())
	assert.Equal(t, color.NRGBA{A: 0xff}, Color("not-a-color").NRGBAOrBlack())
}
