package ui

import (
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalWhiteboard/internal/board"
	"LocalWhiteboard/internal/export"
	"LocalWhiteboard/internal/state"
)

func buildTestBoard(t *testing.T, opts Options) (*board.Controller, *BoardWidget, *Toolbar) {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(800, 600))

	opts.Config = board.DefaultConfig()
	opts.Logger = slog.New(slog.DiscardHandler)
	c, b, tb, err := Build(w, opts)
	require.NoError(t, err)
	return c, b, tb
}

func TestToolbarReflectsToolSelection(t *testing.T) {
	c, b, tb := buildTestBoard(t, Options{})

	assert.True(t, tb.palette.Visible())
	assert.Equal(t, desktop.CrosshairCursor, b.Cursor())

	test.Tap(tb.tools[state.ToolEraser])
	assert.Equal(t, state.ToolEraser, c.Tools().Tool())
	assert.False(t, tb.palette.Visible())
	assert.Equal(t, desktop.PointerCursor, b.Cursor())

	test.Tap(tb.tools[state.ToolPen])
	assert.True(t, tb.palette.Visible())
	assert.Equal(t, desktop.CrosshairCursor, b.Cursor())
}

func TestToolbarHighlightsOneSwatch(t *testing.T) {
	c, _, tb := buildTestBoard(t, Options{})

	test.Tap(tb.swatches["#dc2626"])
	assert.Equal(t, state.Color("#dc2626"), c.Tools().Color())
	active := 0
	for col, sw := range tb.swatches {
		if sw.active {
			active++
			assert.Equal(t, state.Color("#dc2626"), col)
		}
	}
	assert.Equal(t, 1, active)
}

func TestToolbarWidthButtons(t *testing.T) {
	_, _, tb := buildTestBoard(t, Options{})
	assert.Equal(t, "3px", tb.sizeLabel.Text)

	test.Tap(tb.decrease)
	test.Tap(tb.decrease)
	assert.Equal(t, "1px", tb.sizeLabel.Text)
	assert.True(t, tb.decrease.Disabled())
	assert.False(t, tb.increase.Disabled())
	assert.Equal(t, fyne.NewSize(2, 2), tb.preview.MinSize())

	for i := 0; i < 6; i++ {
		tb.increase.OnTapped()
	}
	assert.Equal(t, "16px", tb.sizeLabel.Text)
	assert.False(t, tb.decrease.Disabled())
	assert.True(t, tb.increase.Disabled())
}

func TestBoardWidgetDrawsWithMouse(t *testing.T) {
	c, b, _ := buildTestBoard(t, Options{})
	b.Resize(fyne.NewSize(300, 300))
	scale := b.surface.Scale()
	require.Equal(t, int(300*scale+0.5), b.surface.Bounds().Dx())

	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	at := func(x, y float32) fyne.PointEvent {
		return fyne.PointEvent{Position: fyne.NewPos(x, y), AbsolutePosition: origin.Add(fyne.NewPos(x, y))}
	}
	for i := 0; i < 4; i++ {
		c.IncreaseWidth()
	}

	b.MouseDown(&desktop.MouseEvent{PointEvent: at(20, 50), Button: desktop.MouseButtonPrimary})
	assert.True(t, c.Drawing())
	b.Dragged(&fyne.DragEvent{PointEvent: at(200, 50)})
	b.MouseUp(&desktop.MouseEvent{PointEvent: at(200, 50), Button: desktop.MouseButtonPrimary})
	assert.False(t, c.Drawing())

	px := b.surface.Image().RGBAAt(int(100*scale), int(50*scale))
	assert.Equal(t, uint8(0xff), px.A)

	b.Dragged(&fyne.DragEvent{PointEvent: at(100, 200)})
	assert.Zero(t, b.surface.Image().RGBAAt(int(100*scale), int(200*scale)).A, "drag after mouse up draws nothing")
}

func TestBoardWidgetMouseOutEndsStroke(t *testing.T) {
	c, b, _ := buildTestBoard(t, Options{})
	b.Resize(fyne.NewSize(300, 300))
	b.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	require.True(t, c.Drawing())
	b.MouseOut()
	assert.False(t, c.Drawing())
}

func TestBuildUsesDirSaver(t *testing.T) {
	dir := t.TempDir()
	c, _, _ := buildTestBoard(t, Options{OutDir: dir})
	assert.Equal(t, export.DirSaver{Dir: dir}, c.Saver)
}

func TestBuildSelectsInitialTool(t *testing.T) {
	c, b, tb := buildTestBoard(t, Options{Tool: state.ToolEraser})
	assert.Equal(t, state.ToolEraser, c.Tools().Tool())
	assert.False(t, tb.palette.Visible())
	assert.Equal(t, desktop.PointerCursor, b.Cursor())
}

func TestBuildRejectsUnknownTool(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	_, _, _, err := Build(w, Options{Config: board.DefaultConfig(), Tool: state.Tool(7), Logger: slog.New(slog.DiscardHandler)})
	assert.ErrorIs(t, err, state.ErrUnknownTool)
}

func TestEraserPreviewIsNeutral(t *testing.T) {
	c, _, tb := buildTestBoard(t, Options{})
	require.NoError(t, c.SelectColor("#dc2626"))
	assert.Equal(t, state.Color("#dc2626").NRGBAOrBlack(), tb.preview.FillColor)

	require.NoError(t, c.SelectTool(state.ToolEraser))
	assert.Equal(t, eraserPreview, tb.preview.FillColor)

	require.NoError(t, c.SelectTool(state.ToolPen))
	assert.Equal(t, state.Color("#dc2626").NRGBAOrBlack(), tb.preview.FillColor)
}

func TestToolbarReportsRejectedSelection(t *testing.T) {
	c, _, tb := buildTestBoard(t, Options{})
	var got []error
	tb.onError = func(err error) { got = append(got, err) }

	tb.selectColor("#00ff00")
	tb.selectTool(state.Tool(7))
	require.Len(t, got, 2)
	assert.ErrorIs(t, got[0], state.ErrUnknownColor)
	assert.ErrorIs(t, got[1], state.ErrUnknownTool)
	assert.Equal(t, state.DefaultColor, c.Tools().Color())

	tb.selectColor("#16a34a")
	assert.Len(t, got, 2)
}
