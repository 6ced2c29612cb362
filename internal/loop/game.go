package loop

import (
	"image"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wheel/internal/input"
	"github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/object"
)

// Sounds plays the game's sound effects.
type Sounds interface {
	PlayHit()
	PlayGameOver()
}

type silentSounds struct{}

func (silentSounds) PlayHit()      {}
func (silentSounds) PlayGameOver() {}

// GameOptions configures a game session.
type GameOptions struct {
	Rand   *rand.Rand  // Required; drives spawning and effects
	Sprite image.Image // Required; the scaled wheel sprite
	Sounds Sounds      // Optional
	Logger *log.Logger // Optional
}

// Game owns one session's state and applies the rules to it.
type Game struct {
	State   *State
	Screen  object.Screen
	Wheel   *object.Wheel
	spawner *object.Spawner
	rng     *rand.Rand
	sounds  Sounds
	logger  *log.Logger
}

// NewGame creates a game in the playing phase.
func NewGame(opts GameOptions) *Game {
	screen := object.NewScreen(config.ScreenWidth, config.ScreenHeight)

	sounds := opts.Sounds
	if sounds == nil {
		sounds = silentSounds{}
	}

	return &Game{
		State:   NewState(),
		Screen:  screen,
		Wheel:   object.NewWheel(screen.Center(), opts.Sprite),
		spawner: object.NewSpawner(opts.Rand, screen, config.EnemyRadius),
		rng:     opts.Rand,
		sounds:  sounds,
		logger:  opts.Logger,
	}
}

// Running reports whether the session has not been terminated.
func (g *Game) Running() bool {
	return g.State.Phase != PhaseTerminated
}

// HandleEvent applies one input event to the current phase.
func (g *Game) HandleEvent(ev input.Event) {
	if ev.Kind == input.Close {
		g.terminate("close")
		return
	}

	switch g.State.Phase {
	case PhasePlaying:
		if seg, ok := object.SegmentForKey(ev.Key); ok {
			g.destroy(seg)
		}
	case PhaseGameOverPrompt:
		switch ev.Key {
		case 'y':
			g.Restart()
		case 'n':
			g.terminate("declined restart")
		}
	}
}

// HandleEvents applies a batch of events in order.
func (g *Game) HandleEvents(events []input.Event) {
	for _, ev := range events {
		g.HandleEvent(ev)
	}
}

// Restart resets the session to its initial playing state.
func (g *Game) Restart() {
	g.debug("restart", "score", g.State.Score)
	g.State.Reset()
}

// Tick runs one full simulation frame without rendering.
func (g *Game) Tick() {
	g.Update()
	g.EndFrame()
}

// Update runs the simulation part of a frame: spawning, movement, collision
// and effects. It does nothing outside the playing phase.
func (g *Game) Update() {
	if g.State.Phase != PhasePlaying {
		return
	}
	updatePlayingState(g)
}

// EndFrame advances the frame counter and escalates difficulty on schedule.
// The counter is frozen outside the playing phase.
func (g *Game) EndFrame() {
	if g.State.Phase != PhasePlaying {
		return
	}
	g.State.Frame++
	if g.State.Frame%config.EscalationFrames == 0 {
		escalate(g.State)
		g.debug("difficulty escalated",
			"frame", g.State.Frame,
			"speed", g.State.Speed,
			"spawnInterval", g.State.SpawnInterval)
	}
}

func (g *Game) destroy(seg object.Segment) {
	e, ok := g.State.Destroy(seg)
	if !ok {
		return
	}
	g.State.Score++
	object.SpawnBurst(e.Pos, seg.Color(), config.HitBurstParticles, g.rng, g.State)
	g.sounds.PlayHit()
}

func (g *Game) gameOver() {
	g.State.Phase = PhaseGameOverPrompt
	g.sounds.PlayGameOver()
	if g.logger != nil {
		seg := object.NoSegment
		if e := collidingEnemy(g.State, g.Wheel); e != nil {
			seg = e.Segment
		}
		g.logger.Debug("game over", "score", g.State.Score, "frame", g.State.Frame, "segment", seg)
	}
}

func (g *Game) terminate(reason string) {
	if g.State.Phase == PhaseTerminated {
		return
	}
	g.State.Phase = PhaseTerminated
	g.debug("session terminated", "reason", reason, "score", g.State.Score)
}

func (g *Game) debug(msg string, keyvals ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(msg, keyvals...)
	}
}
