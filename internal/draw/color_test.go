package draw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPacking(t *testing.T) {
	c := RGB(12, 34, 56)
	assert.True(t, c.IsSet())
	r, g, b := c.RGB()
	assert.Equal(t, []uint8{12, 34, 56}, []uint8{r, g, b})
	assert.False(t, Color(0).IsSet())
	assert.True(t, Black.IsSet(), "black is a real color, not an empty pixel")
}

func TestMustHex(t *testing.T) {
	assert.Equal(t, RGB(0, 0, 255), MustHex("#0000ff"))
	assert.Equal(t, "#ffff00", MustHex("#ffff00").Hex())
	assert.Panics(t, func() { MustHex("blue") })
}

func TestBlend(t *testing.T) {
	red := RGB(255, 0, 0)
	assert.Equal(t, red, red.Blend(Black, 0))
	assert.Equal(t, Black, red.Blend(Black, 1))

	mid := red.Blend(Black, 0.5)
	r, g, b := mid.RGB()
	assert.Less(t, r, uint8(255))
	assert.Greater(t, r, uint8(0))
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)
}

func TestSGR(t *testing.T) {
	assert.Equal(t, "\033[38;2;1;2;3m", RGB(1, 2, 3).Fg())
	assert.Equal(t, "\033[48;2;255;0;0m", RGB(255, 0, 0).Bg())
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 5, 2)

	cw.WriteAt(1, 1, "Score: 3")
	cw.WriteStyled(2, 3, White, 0, "hi")
	assert.Empty(t, out.String(), "nothing is written before Flush")
	assert.Positive(t, cw.Len())

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[3;6HScore: 3\033[5;7H"+White.Fg()+"hi"+ColorReset, out.String())
	assert.Zero(t, cw.Len())
}
