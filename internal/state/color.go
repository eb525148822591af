package state

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a palette entry in "#rrggbb" form.
type Color string

const DefaultColor Color = "#2563eb"

// DefaultPalette is the swatch row shown next to the pen tool.
var DefaultPalette = []Color{
	"#000000",
	"#2563eb",
	"#dc2626",
	"#16a34a",
	"#ca8a04",
	"#9333ea",
	"#ea580c",
	"#6b7280",
}

// NRGBA parses the hex value into an opaque color.
func (c Color) NRGBA() (color.NRGBA, error) {
	parsed, err := colorful.Hex(strings.ToLower(string(c)))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, string(c))
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// NRGBAOrBlack is NRGBA for palette entries that have already been
// validated. A value that does not parse yields opaque black.
func (c Color) NRGBAOrBlack() color.NRGBA {
	col, err := c.NRGBA()
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return col
}
