// Package raster is the pixel surface strokes are painted onto.
//
// A Canvas keeps a premultiplied RGBA backing store sized to the logical
// surface times the device pixel ratio. Drawing calls take logical
// coordinates; the scale is applied when segments are rasterized. Segments
// are stroked with round caps and joins by rasterx and composited either
// source-over (pen) or destination-out (eraser).
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"LocalWhiteboard/internal/state"
)

// Style is the stroke configuration applied by the next Stroke calls.
type Style struct {
	Composite state.Composite
	Color     color.Color
	Width     float32
}

// DefaultStyle is what a freshly sized canvas strokes with.
func DefaultStyle() Style {
	return Style{Composite: state.SourceOver, Color: color.Black, Width: 1}
}

type Canvas struct {
	img   *image.RGBA
	scale float32
	size  state.Point

	style   Style
	hasPen  bool // a current point exists
	prev    state.Point
	cur     state.Point
	pending bool // cur was added by LineTo and not yet stroked
}

// New returns a canvas of the given logical size and device pixel ratio.
func New(width, height, scale float32) *Canvas {
	c := &Canvas{}
	c.Resize(width, height, scale)
	return c
}

// Resize recreates the backing store. All pixels, the current path and the
// stroke style are reset, as a canvas element does when its size is set.
func (c *Canvas) Resize(width, height, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(width * scale)))
	h := int(math.Round(float64(height * scale)))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.scale = scale
	c.size = state.Point{X: width, Y: height}
	c.style = DefaultStyle()
	c.hasPen = false
	c.pending = false
}

func (c *Canvas) Image() *image.RGBA { return c.img }
func (c *Canvas) Scale() float32     { return c.scale }
func (c *Canvas) Size() state.Point  { return c.size }

// Bounds is the backing store rectangle in physical pixels.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) SetStyle(s Style) {
	if s.Color == nil {
		s.Color = color.Black
	}
	c.style = s
}

func (c *Canvas) Style() Style { return c.style }

// BeginPath drops the current path; the next LineTo starts a new one.
func (c *Canvas) BeginPath() {
	c.hasPen = false
	c.pending = false
}

func (c *Canvas) MoveTo(p state.Point) {
	c.cur = p
	c.hasPen = true
	c.pending = false
}

// LineTo extends the path. Without a current point it behaves like MoveTo.
func (c *Canvas) LineTo(p state.Point) {
	if !c.hasPen {
		c.MoveTo(p)
		return
	}
	c.prev = c.cur
	c.cur = p
	c.pending = true
}

// Stroke rasterizes the segment added by the last LineTo.
func (c *Canvas) Stroke() {
	if !c.pending {
		return
	}
	c.pending = false
	c.strokeSegment(c.prev, c.cur)
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// EncodePNG writes the backing store as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) strokeSegment(a, b state.Point) {
	bounds := c.img.Bounds()
	if bounds.Empty() || c.style.Width <= 0 {
		return
	}
	s := float64(c.scale)
	half := float64(c.style.Width) * s / 2
	ax, ay := float64(a.X)*s, float64(a.Y)*s
	bx, by := float64(b.X)*s, float64(b.Y)*s

	area := image.Rect(
		int(math.Floor(math.Min(ax, bx)-half))-1,
		int(math.Floor(math.Min(ay, by)-half))-1,
		int(math.Ceil(math.Max(ax, bx)+half))+1,
		int(math.Ceil(math.Max(ay, by)+half))+1,
	).Intersect(bounds)
	if area.Empty() {
		return
	}

	// Rasterize in a mask covering only the segment; points are shifted so
	// the mask origin is area.Min.
	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	scanner := rasterx.NewScannerGV(area.Dx(), area.Dy(), mask, mask.Bounds())
	dasher := rasterx.NewDasher(area.Dx(), area.Dy(), scanner)
	dasher.SetStroke(
		fixed.Int26_6(float64(c.style.Width)*s*64),
		fixed.Int26_6(4*64),
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round,
		nil, 0)
	dasher.Start(rasterx.ToFixedP(ax-ox, ay-oy))
	dasher.Line(rasterx.ToFixedP(bx-ox, by-oy))
	dasher.Stop(false)
	dasher.SetColor(color.Opaque)
	dasher.Draw()

	switch c.style.Composite {
	case state.DestinationOut:
		c.eraseMasked(area, mask)
	default:
		draw.DrawMask(c.img, area, image.NewUniform(c.style.Color), image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// eraseMasked applies D*(1-Sa) to the premultiplied pixels under the mask.
// The mask's origin is area.Min.
func (c *Canvas) eraseMasked(area image.Rectangle, mask *image.Alpha) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		mi := mask.PixOffset(0, y-area.Min.Y)
		pi := c.img.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			m := uint32(mask.Pix[mi])
			if m != 0 {
				keep := 0xff - m
				px := c.img.Pix[pi : pi+4 : pi+4]
				for i := range px {
					px[i] = uint8((uint32(px[i])*keep + 0x7f) / 0xff)
				}
			}
			mi++
			pi += 4
		}
	}
}
