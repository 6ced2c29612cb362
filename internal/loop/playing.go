package loop

import (
	"github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/object"
)

// updatePlayingState runs one frame of the playing phase.
func updatePlayingState(g *Game) {
	state := g.State

	if state.Frame%state.SpawnInterval == 0 {
		state.Enqueue(g.spawner.Spawn())
	}

	if moveEnemies(state, g.updateContext(), g.Wheel) {
		g.gameOver()
	}

	updateEffects(state, g.updateContext())
}

// updateContext creates an UpdateContext from the current state.
func (g *Game) updateContext() object.UpdateContext {
	return object.UpdateContext{
		Target:  g.Wheel.Center,
		Speed:   g.State.Speed,
		Rand:    g.rng,
		Emitter: g.State,
	}
}

// updateEffects updates all effects and removes any that request removal.
func updateEffects(state *State, ctx object.UpdateContext) {
	kept := state.Effects[:0] // reuse backing array
	for _, obj := range state.Effects {
		if obj.Update(ctx) {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(state.Effects[len(kept):])
	state.Effects = kept

	state.FlushSpawned()
}

// escalate raises enemy speed and shortens the spawn interval down to its floor.
func escalate(state *State) {
	state.Speed += config.EnemySpeedStep
	state.SpawnInterval = max(config.MinSpawnInterval, state.SpawnInterval-config.SpawnIntervalStep)
}
