package loop

import (
	"fmt"

	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/object"
)

// Logical position of the score text's top-left corner.
const (
	hudX = 10
	hudY = 10
)

// drawUI draws the text overlay for the current phase on top of the canvas.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	drawPlayingHUD(state, cw, canvas)
	drawLegend(cw, canvas)

	if state.Phase == PhaseGameOverPrompt {
		drawGameOverPrompt(state, cw, canvas)
	}
}

// drawPlayingHUD draws the score in the top-left corner.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	col, row := canvas.LogicalToTerminal(hudX, hudY)
	text := fitText(fmt.Sprintf("Score: %d", state.Score), canvas.TerminalWidth()-col+1)
	cw.WriteStyled(col, row, draw.White, draw.Black, text)
}

// drawLegend draws each segment key in its color along the bottom row.
func drawLegend(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	segs := object.Segments()
	width := len(segs)*2 - 1
	if canvas.TerminalWidth() < width+2 || canvas.TerminalHeight() < 3 {
		return
	}

	col, _ := canvas.LogicalToTerminal(hudX, hudY)
	row := canvas.TerminalHeight()
	for _, seg := range segs {
		cw.WriteStyled(col, row, seg.Color(), draw.Black, seg.String())
		col += 2
	}
}

// drawGameOverPrompt draws the restart question centered horizontally at a
// quarter of the play area's height.
func drawGameOverPrompt(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	msg := fitText(fmt.Sprintf("You lost, score is %d. Restart? (Y/N)", state.Score), canvas.TerminalWidth())
	_, row := canvas.LogicalToTerminal(canvas.LogicalWidth()/2, canvas.LogicalHeight()/4)
	col := (canvas.TerminalWidth()-len(msg))/2 + 1
	cw.WriteStyled(col, row, draw.White, draw.Black, msg)
}

// fitText truncates s to at most width bytes.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}
