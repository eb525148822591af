package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalWhiteboard/internal/board"
	"LocalWhiteboard/internal/state"
)

var (
	swatchBorder       = color.Gray{Y: 150}
	swatchActiveBorder = color.Gray{Y: 30}
	eraserPreview      = color.Gray{Y: 170}
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)

	active bool
	fill   *canvas.Rectangle
	border *canvas.Rectangle
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.fill = canvas.NewRectangle(c.NRGBAOrBlack())
	s.fill.SetMinSize(fyne.NewSize(28, 28))
	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = swatchBorder
	s.border.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.fill, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) SetActive(active bool) {
	s.active = active
	if active {
		s.border.StrokeColor = swatchActiveBorder
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = swatchBorder
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// Toolbar holds the tool, color, size and action controls. The tool buttons
// and swatches are keyed by their value so reflecting a view never searches
// by label.
type Toolbar struct {
	ctrl    *board.Controller
	onError func(error)

	tools    map[state.Tool]*widget.Button
	swatches map[state.Color]*colorSwatch
	palette  *fyne.Container

	decrease  *widget.Button
	increase  *widget.Button
	preview   *canvas.Rectangle
	sizeLabel *widget.Label

	object fyne.CanvasObject
}

// NewToolbar builds the controls for c. onError receives rejected
// selections and failures of the save action.
func NewToolbar(c *board.Controller, onError func(error)) *Toolbar {
	t := &Toolbar{
		ctrl:     c,
		onError:  onError,
		tools:    make(map[state.Tool]*widget.Button),
		swatches: make(map[state.Color]*colorSwatch),
	}

	toolBox := container.NewHBox()
	for _, tool := range state.Tools {
		icon := theme.DocumentCreateIcon()
		if tool == state.ToolEraser {
			icon = theme.ContentClearIcon()
		}
		btn := widget.NewButtonWithIcon(tool.Label(), icon, func() {
			t.selectTool(tool)
		})
		t.tools[tool] = btn
		toolBox.Add(btn)
	}

	// --- Color Palette ---
	t.palette = container.NewHBox()
	for _, col := range c.Tools().Palette() {
		sw := newColorSwatch(col, t.selectColor)
		t.swatches[col] = sw
		t.palette.Add(sw)
	}

	// --- Stroke Width ---
	t.decrease = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), c.DecreaseWidth)
	t.increase = widget.NewButtonWithIcon("", theme.ContentAddIcon(), c.IncreaseWidth)
	t.preview = canvas.NewRectangle(color.Black)
	t.sizeLabel = widget.NewLabel("")
	maxWidth := float32(c.Tools().Widths()[len(c.Tools().Widths())-1])
	previewBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(maxWidth+4, maxWidth+4)),
		container.NewCenter(t.preview))

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), c.Clear)
	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		t.report(c.Save())
	})

	t.object = container.NewHBox(
		toolBox,
		widget.NewSeparator(),
		t.palette,
		widget.NewSeparator(),
		t.decrease,
		previewBox,
		t.increase,
		t.sizeLabel,
		layout.NewSpacer(),
		clearBtn,
		saveBtn,
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

func (t *Toolbar) selectTool(tool state.Tool) { t.report(t.ctrl.SelectTool(tool)) }
func (t *Toolbar) selectColor(c state.Color) { t.report(t.ctrl.SelectColor(c)) }

func (t *Toolbar) report(err error) {
	if err != nil && t.onError != nil {
		t.onError(err)
	}
}

// Reflect updates highlights, the size controls and palette visibility.
func (t *Toolbar) Reflect(v board.View) {
	for tool, btn := range t.tools {
		if tool == v.Tool {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	for col, sw := range t.swatches {
		sw.SetActive(col == v.Color)
	}

	if v.CanDecrease {
		t.decrease.Enable()
	} else {
		t.decrease.Disable()
	}
	if v.CanIncrease {
		t.increase.Enable()
	} else {
		t.increase.Disable()
	}

	size := float32(v.PreviewSize)
	if v.Tool == state.ToolEraser {
		t.preview.FillColor = eraserPreview
	} else {
		t.preview.FillColor = v.Color.NRGBAOrBlack()
	}
	t.preview.CornerRadius = size / 2
	t.preview.SetMinSize(fyne.NewSize(size, size))
	t.preview.Resize(fyne.NewSize(size, size))
	t.preview.Refresh()
	t.sizeLabel.SetText(v.WidthLabel)

	if v.ShowPalette {
		t.palette.Show()
	} else {
		t.palette.Hide()
	}
}

// statusBar shows the active tool and, for the pen, its color.
type statusBar struct {
	label     *widget.Label
	indicator *canvas.Rectangle
	object    fyne.CanvasObject
}

func newStatusBar() *statusBar {
	s := &statusBar{
		label:     widget.NewLabel("Ready"),
		indicator: canvas.NewRectangle(color.Transparent),
	}
	s.indicator.SetMinSize(fyne.NewSize(14, 14))
	s.indicator.CornerRadius = 7
	s.object = container.NewHBox(s.label, container.NewCenter(s.indicator))
	return s
}

func (s *statusBar) Object() fyne.CanvasObject { return s.object }

func (s *statusBar) Reflect(v board.View) {
	s.label.SetText(v.Status)
	if v.ShowSwatch {
		s.indicator.FillColor = v.Color.NRGBAOrBlack()
		s.indicator.Refresh()
		s.indicator.Show()
	} else {
		s.indicator.Hide()
	}
}
