package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalWhiteboard/internal/board"
	"LocalWhiteboard/internal/raster"
	"LocalWhiteboard/internal/state"
)

// BoardWidget shows the surface and forwards pointer and touch input to the
// controller.
type BoardWidget struct {
	widget.BaseWidget
	controller *board.Controller
	surface    *raster.Canvas
	raster     *canvas.Raster
	background *canvas.Rectangle

	cursor    desktop.Cursor
	lastSize  fyne.Size
	lastScale float32
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(c *board.Controller, surface *raster.Canvas) *BoardWidget {
	b := &BoardWidget{
		controller: c,
		surface:    surface,
		background: canvas.NewRectangle(color.White),
		cursor:     desktop.CrosshairCursor,
	}
	b.raster = canvas.NewRaster(func(w, h int) image.Image {
		return b.surface.Image()
	})
	c.OnChange = b.raster.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, b.raster))
}

func (b *BoardWidget) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

// Resize resizes the widget and, when its size or the canvas scale changed,
// the surface behind it. Resizing the surface discards the drawing.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	scale := b.scale()
	if size == b.lastSize && scale == b.lastScale {
		return
	}
	b.lastSize, b.lastScale = size, scale
	b.controller.Resize(size.Width, size.Height, scale)
}

func (b *BoardWidget) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(b); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

func (b *BoardWidget) origin() state.Point {
	app := fyne.CurrentApp()
	if app == nil {
		return state.Point{}
	}
	pos := app.Driver().AbsolutePositionForObject(b)
	return state.Point{X: pos.X, Y: pos.Y}
}

func (b *BoardWidget) dispatch(kind board.EventKind, abs fyne.Position) {
	b.controller.SetOrigin(b.origin())
	ev := board.Event{Kind: kind, Client: state.Point{X: abs.X, Y: abs.Y}}
	if kind == board.TouchStart || kind == board.TouchMove {
		ev.Touches = []state.Point{ev.Client}
	}
	b.controller.Handle(ev)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.dispatch(board.PointerDown, e.AbsolutePosition)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.dispatch(board.PointerUp, e.AbsolutePosition)
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.dispatch(board.PointerMove, e.AbsolutePosition)
}

func (b *BoardWidget) DragEnd() {
	b.controller.Handle(board.Event{Kind: board.PointerUp})
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.controller.Handle(board.Event{Kind: board.PointerLeave})
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.dispatch(board.TouchStart, e.AbsolutePosition)
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.controller.Handle(board.Event{Kind: board.TouchEnd})
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.controller.Handle(board.Event{Kind: board.TouchEnd})
}

func (b *BoardWidget) Cursor() desktop.Cursor { return b.cursor }

// Reflect switches the pointer affordance to match the active tool.
func (b *BoardWidget) Reflect(v board.View) {
	switch v.Cursor {
	case state.CursorEraser:
		b.cursor = desktop.PointerCursor
	default:
		b.cursor = desktop.CrosshairCursor
	}
}
