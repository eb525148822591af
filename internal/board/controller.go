// Package board holds the whiteboard controller: the tool state, the stroke
// state machine that turns input events into surface calls, and the clear
// and save actions. It has no dependency on a windowing toolkit.
package board

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"LocalWhiteboard/internal/export"
	"LocalWhiteboard/internal/raster"
	"LocalWhiteboard/internal/state"
)

// ClearPrompt is the question asked before the surface is wiped.
const ClearPrompt = "Are you sure you want to clear the whiteboard?"

var ErrNoSaver = errors.New("no saver configured")

// Surface is the raster target the controller draws on. *raster.Canvas
// implements it.
type Surface interface {
	Resize(width, height, scale float32)
	SetStyle(raster.Style)
	BeginPath()
	MoveTo(state.Point)
	LineTo(state.Point)
	Stroke()
	Clear()
	EncodePNG(io.Writer) error
}

// Confirmer asks the user a yes/no question and reports the answer.
// The fyne implementation shows a modal dialog.
type Confirmer interface {
	Confirm(message string, answer func(ok bool))
}

// Saver delivers an exported image under the given file name.
type Saver interface {
	Save(name string, data []byte) error
}

// Controller owns all board state. It is driven from a single UI thread
// and does no locking.
type Controller struct {
	tools   *state.ToolState
	surface Surface

	drawing  bool
	origin   state.Point
	handlers map[EventKind]func(Event)

	reflectors []Reflector
	log        *slog.Logger

	Confirm  Confirmer
	Saver    Saver
	Now      state.Clock
	OnChange func() // called after surface pixels may have changed
}

func New(cfg Config, surface Surface) (*Controller, error) {
	tools, err := cfg.toolState()
	if err != nil {
		return nil, fmt.Errorf("board config: %w", err)
	}
	c := &Controller{
		tools:   tools,
		surface: surface,
		log:     slog.New(slog.DiscardHandler),
		Now:     state.SystemClock,
	}
	c.handlers = map[EventKind]func(Event){
		PointerDown:  c.startStroke,
		TouchStart:   c.startStroke,
		PointerMove:  c.extendStroke,
		TouchMove:    c.extendStroke,
		PointerUp:    c.endStroke,
		PointerLeave: c.endStroke,
		TouchEnd:     c.endStroke,
	}
	return c, nil
}

// SetLogger replaces the silent default logger. nil restores it.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.log = l.With("session", state.SessionID())
}

// AddReflector registers r and immediately shows it the current view.
func (c *Controller) AddReflector(r Reflector) {
	c.reflectors = append(c.reflectors, r)
	r.Reflect(c.View())
}

func (c *Controller) View() View              { return Project(c.tools) }
func (c *Controller) Tools() *state.ToolState { return c.tools }
func (c *Controller) Drawing() bool            { return c.drawing }

// SetOrigin records the surface's top-left corner in client coordinates.
func (c *Controller) SetOrigin(p state.Point) { c.origin = p }

// Resize resynchronizes the surface with its displayed size and pixel ratio.
// The drawing is lost.
func (c *Controller) Resize(width, height, scale float32) {
	c.surface.Resize(width, height, scale)
	c.log.Debug("surface resized", "width", width, "height", height, "scale", scale)
	c.changed()
}

// Handle dispatches an input event to the stroke state machine.
func (c *Controller) Handle(ev Event) {
	if h, ok := c.handlers[ev.Kind]; ok {
		h(ev)
	}
}

func (c *Controller) startStroke(ev Event) {
	pos, ok := Locate(ev, c.origin)
	if !ok {
		return
	}
	style := raster.Style{
		Composite: c.tools.Composite(),
		Color:     c.tools.Color().NRGBAOrBlack(),
		Width:     float32(c.tools.Width()),
	}
	c.surface.BeginPath()
	c.surface.MoveTo(pos)
	c.surface.SetStyle(style)
	c.drawing = true
	c.log.Debug("stroke started", "tool", c.tools.Tool(), "composite", style.Composite, "width", style.Width)
}

func (c *Controller) extendStroke(ev Event) {
	if !c.drawing {
		return
	}
	pos, ok := Locate(ev, c.origin)
	if !ok {
		return
	}
	c.surface.LineTo(pos)
	c.surface.Stroke()
	c.changed()
}

func (c *Controller) endStroke(Event) {
	if !c.drawing {
		return
	}
	c.drawing = false
	c.surface.BeginPath()
	c.log.Debug("stroke ended")
}

func (c *Controller) SelectTool(t state.Tool) error {
	if err := c.tools.SetTool(t); err != nil {
		c.log.Warn("tool rejected", "error", err)
		return err
	}
	c.reflect()
	return nil
}

func (c *Controller) SelectColor(col state.Color) error {
	if err := c.tools.SetColor(col); err != nil {
		c.log.Warn("color rejected", "error", err)
		return err
	}
	c.reflect()
	return nil
}

func (c *Controller) IncreaseWidth() { c.stepWidth(1) }
func (c *Controller) DecreaseWidth() { c.stepWidth(-1) }

func (c *Controller) stepWidth(delta int) {
	c.tools.StepWidth(delta)
	c.reflect()
}

// Clear wipes the surface once the user confirms. Declining, or having no
// Confirmer, leaves the surface untouched.
func (c *Controller) Clear() {
	if c.Confirm == nil {
		c.log.Warn("clear ignored: no confirmer")
		return
	}
	c.Confirm.Confirm(ClearPrompt, func(ok bool) {
		if !ok {
			c.log.Debug("clear cancelled")
			return
		}
		c.surface.Clear()
		c.log.Info("surface cleared")
		c.changed()
	})
}

// Save encodes the surface as PNG and hands it to the Saver as
// whiteboard-<date>.png.
func (c *Controller) Save() error {
	if c.Saver == nil {
		return ErrNoSaver
	}
	var buf bytes.Buffer
	if err := c.surface.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode surface: %w", err)
	}
	name := export.FileName(c.Now())
	if err := c.Saver.Save(name, buf.Bytes()); err != nil {
		c.log.Error("save failed", "file", name, "error", err)
		return fmt.Errorf("save %s: %w", name, err)
	}
	c.log.Info("surface exported", "file", name, "bytes", buf.Len())
	return nil
}

func (c *Controller) reflect() {
	v := c.View()
	for _, r := range c.reflectors {
		r.Reflect(v)
	}
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
