// Package loop provides the main game loop and state management.
package loop

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/input"
	"github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/object"
)

// Options configures a session run by Run.
type Options struct {
	GameOptions
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
}

// Run plays one session on the given terminal streams with the standard
// Input → Update → Draw cycle. It returns when the session is terminated or
// a write to w fails.
func Run(r io.Reader, w io.Writer, opts Options) error {
	return NewGame(opts.GameOptions).Run(r, w, opts.TermSizeFunc)
}

// Run drives the game at a fixed frame rate until it is terminated.
func (g *Game) Run(r io.Reader, w io.Writer, termSize draw.TermSizeFunc) error {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	stream := input.StartStream(r)

	if err := draw.EnterScreen(w); err != nil {
		return errors.Wrap(err, "enter screen")
	}
	defer draw.LeaveScreen(w)

	canvas := draw.NewScaledCanvas(1, 1, config.ScreenWidth, config.ScreenHeight)
	canvas.SetBackground(draw.Black)
	cw := draw.NewChunkWriter(w, 0, 0)
	view := &viewport{}

	for g.Running() {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		g.HandleEvents(stream.Poll())
		if !g.Running() {
			break
		}

		// ===== UPDATE PHASE =====
		g.updateScreen(view, termSize, canvas, cw)
		g.Update()

		// ===== DRAW PHASE =====
		if err := g.drawFrame(cw, canvas); err != nil {
			return errors.Wrap(err, "draw frame")
		}
		g.EndFrame()

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// viewport remembers the last terminal size seen by the loop.
type viewport struct {
	width, height int
}

// updateScreen checks for terminal resize and refits the canvas.
// The screen is cleared on resize so stale cells outside the new area vanish.
func (g *Game) updateScreen(view *viewport, termSize draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	termWidth, termHeight, err := termSize()
	if err != nil {
		g.debug("terminal size unavailable", "err", err)
		return
	}
	if termWidth == view.width && termHeight == view.height {
		return
	}
	view.width, view.height = termWidth, termHeight

	renderW, renderH, offCol, offRow := draw.FitTerminal(termWidth, termHeight, config.ScreenWidth, config.ScreenHeight)
	canvas.Resize(renderW, renderH)
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	_ = draw.ClearScreen(cw)

	g.debug("terminal resized", "width", termWidth, "height", termHeight, "renderWidth", renderW, "renderHeight", renderH)
}

// drawFrame draws all objects and the overlay, then flushes the frame.
func (g *Game) drawFrame(cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	canvas.Clear()

	ctx := object.DrawContext{Canvas: canvas}
	g.Wheel.Draw(ctx)
	for _, q := range g.State.Queues {
		for _, e := range q {
			e.Draw(ctx)
		}
	}
	for _, fx := range g.State.Effects {
		fx.Draw(ctx)
	}

	if err := canvas.Render(cw); err != nil {
		return err
	}
	if err := canvas.RenderBorder(cw); err != nil {
		return err
	}

	// Draw UI overlay (after canvas render so it's on top)
	drawUI(g.State, cw, canvas)

	return cw.Flush()
}
