package draw

import (
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 24-bit RGB value with a presence bit.
// The zero Color means "no pixel".
type Color uint32

const colorSet Color = 1 << 24

// ColorReset resets all SGR attributes.
const ColorReset = "\033[0m"

// Common colors.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Gray  = RGB(128, 128, 128)
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColorful converts a go-colorful color, clamping it into RGB space.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// MustHex parses a "#rrggbb" string and panics on malformed input.
// Intended for package-level color tables.
func MustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return FromColorful(c)
}

// IsSet reports whether c holds a color.
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// RGB unpacks the channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful returns the color as a go-colorful value.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend mixes c toward o by t in [0, 1] in CIE L*a*b* space.
func (c Color) Blend(o Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return FromColorful(c.Colorful().BlendLab(o.Colorful(), t))
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// appendFg appends a 24-bit foreground SGR sequence.
func (c Color) appendFg(buf []byte) []byte {
	return c.appendSGR(buf, "\033[38;2;")
}

// appendBg appends a 24-bit background SGR sequence.
func (c Color) appendBg(buf []byte) []byte {
	return c.appendSGR(buf, "\033[48;2;")
}

func (c Color) appendSGR(buf []byte, prefix string) []byte {
	r, g, b := c.RGB()
	buf = append(buf, prefix...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}

// Fg returns the foreground escape sequence for c.
func (c Color) Fg() string {
	return string(c.appendFg(nil))
}

// Bg returns the background escape sequence for c.
func (c Color) Bg() string {
	return string(c.appendBg(nil))
}
