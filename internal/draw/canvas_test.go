package draw

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTerminal(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		wantW, wantH         int
		wantOffCol, wantOffR int
	}{
		// 1200x1000 logical: 120 cols -> 0.1 scale -> 100 sub-pixels -> 50 rows.
		{"tall terminal", 120, 80, 120, 50, 0, 15},
		// 40 rows -> 80 sub-pixels -> scale 0.08 -> 96 cols.
		{"wide terminal", 200, 40, 96, 40, 52, 0},
		{"degenerate", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitTerminal(tt.termW, tt.termH, 1200, 1000)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantOffCol, oc)
			assert.Equal(t, tt.wantOffR, or)
		})
	}
}

func TestFillCircle(t *testing.T) {
	// 1:1 scale in both axes: 100 cols, 50 rows -> 100x100 pixels.
	c := NewScaledCanvas(100, 50, 100, 100)
	red := RGB(255, 0, 0)

	c.FillCircle(Point{X: 50, Y: 50}, 10, red)

	assert.Equal(t, red, c.Pixel(50, 50))
	assert.Equal(t, red, c.Pixel(42, 50))
	assert.False(t, c.Pixel(62, 50).IsSet())
	assert.False(t, c.Pixel(58, 58).IsSet(), "corner of bounding box is outside the circle")
}

func TestFillCircleSubPixel(t *testing.T) {
	// Scale 0.01: a radius-10 circle is smaller than a pixel.
	c := NewScaledCanvas(12, 5, 1200, 1000)
	blue := RGB(0, 0, 255)

	c.FillCircle(Point{X: 600, Y: 500}, 1, blue)

	assert.Equal(t, blue, c.Pixel(6, 5))
}

func TestDrawImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	// (1,0) and (0,1) stay transparent.

	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawImage(img, Point{X: 0, Y: 0}, 10, 10)

	assert.Equal(t, RGB(255, 0, 0), c.Pixel(2, 2))
	assert.Equal(t, RGB(0, 255, 0), c.Pixel(7, 7))
	assert.False(t, c.Pixel(7, 2).IsSet())
	assert.False(t, c.Pixel(2, 7).IsSet())
}

func TestRender(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(3, 1)
	red := RGB(255, 0, 0)
	green := RGB(0, 255, 0)

	c.setPixel(0, 0, red)
	c.setPixel(0, 1, red)
	c.setPixel(1, 0, red)
	c.setPixel(1, 1, green)
	c.setPixel(2, 3, green)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "\033[2;4H"), "first row starts at offset")
	assert.Contains(t, out, "\033[3;4H")
	assert.Contains(t, out, red.Fg()+string(BlockFull))
	assert.Contains(t, out, red.Fg()+green.Bg()+string(BlockUpperHalf))
	assert.Contains(t, out, green.Fg()+string(BlockLowerHalf))
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var buf bytes.Buffer
	require.NoError(t, c.RenderBorder(&buf))
	assert.Empty(t, buf.String(), "no room for a border")

	c.SetOffset(2, 2)
	require.NoError(t, c.RenderBorder(&buf))
	out := buf.String()
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
	assert.Contains(t, out, "│")
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(120, 50, 1200, 1000)
	col, row := c.LogicalToTerminal(600, 250)
	assert.Equal(t, 61, col)
	assert.Equal(t, 13, row)
}
