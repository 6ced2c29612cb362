package draw

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Objects draw in logical coordinates; the canvas scales them to terminal pixels.
type Canvas struct {
	termWidth      int     // Render area columns
	termHeight     int     // Render area rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], zero means empty

	background Color // Used for empty cells; zero leaves the terminal default

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area, for centering.
	offsetCol int
	offsetRow int

	renderBuf []byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// termWidth/Height are the dimensions of the render area in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// FitTerminal computes the largest render area inside a terminal that keeps the
// logical aspect ratio (one cell is one pixel wide and two pixels tall), and the
// offsets that center it.
func FitTerminal(termWidth, termHeight int, logicalWidth, logicalHeight float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	if termWidth < 1 || termHeight < 1 {
		return 1, 1, 0, 0
	}
	scale := math.Min(float64(termWidth)/logicalWidth, float64(termHeight*2)/logicalHeight)
	renderWidth = max(1, min(termWidth, int(logicalWidth*scale)))
	renderHeight = max(1, min(termHeight, int(logicalHeight*scale/2)))
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return renderWidth, renderHeight, offsetCol, offsetRow
}

// Resize updates the render area while keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(1, termWidth)
	termHeight = max(1, termHeight)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// SetBackground sets the color painted into empty cells.
func (c *Canvas) SetBackground(col Color) {
	c.background = col
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at terminal pixel coordinates, or zero when out of range.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return 0
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	c.setPixel(px, py, col)
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// It stays below a typical 1500-byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the whole render area using half-block characters.
// Every cell is repainted, so the terminal does not need clearing between frames.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]

	for row := 0; row < c.termHeight; row++ {
		buf = appendCursor(buf, c.offsetCol+1, row+1+c.offsetRow)
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		var curFg, curBg Color
		styled := false
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			ch := ' '
			fg, bg := Color(0), c.background
			switch {
			case top.IsSet() && bottom.IsSet() && top == bottom:
				ch, fg = BlockFull, top
			case top.IsSet() && bottom.IsSet():
				ch, fg, bg = BlockUpperHalf, top, bottom
			case top.IsSet():
				ch, fg = BlockUpperHalf, top
			case bottom.IsSet():
				ch, fg = BlockLowerHalf, bottom
			}

			if !styled || fg != curFg || bg != curBg {
				buf = append(buf, ColorReset...)
				if fg.IsSet() {
					buf = fg.appendFg(buf)
				}
				if bg.IsSet() {
					buf = bg.appendBg(buf)
				}
				curFg, curBg, styled = fg, bg, true
			}
			buf = appendRune(buf, ch)
		}
		buf = append(buf, ColorReset...)
	}

	c.renderBuf = buf
	return writeChunked(w, buf)
}

// RenderBorder draws a box border around the canvas area when there is room
// for it on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	buf := append([]byte(nil), Gray.Fg()...)
	if hasV {
		startCol, endCol := c.offsetCol+1, c.offsetCol+c.termWidth
		for _, row := range []int{top, bottom} {
			buf = appendCursor(buf, startCol, row)
			for col := startCol; col <= endCol; col++ {
				buf = appendRune(buf, '─')
			}
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf = appendCursor(buf, left, row)
			buf = appendRune(buf, '│')
			buf = appendCursor(buf, right, row)
			buf = appendRune(buf, '│')
		}
	}
	if hasH && hasV {
		for _, corner := range []struct {
			col, row int
			ch       rune
		}{{left, top, '┌'}, {right, top, '┐'}, {left, bottom, '└'}, {right, bottom, '┘'}} {
			buf = appendCursor(buf, corner.col, corner.row)
			buf = appendRune(buf, corner.ch)
		}
	}
	buf = append(buf, ColorReset...)
	return writeChunked(w, buf)
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the render area column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based position (col, row)
// inside the render area. Callers writing through a ChunkWriter get the offset applied.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

func appendCursor(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}

func appendRune(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, r)
}

// writeChunked writes data in MTU-sized pieces.
func writeChunked(w io.Writer, data []byte) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
