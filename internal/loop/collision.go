package loop

import "github.com/tomz197/wheel/internal/object"

// moveEnemies moves every enemy toward the wheel and reports whether any of
// them now overlaps it. All enemies move even after the first hit.
func moveEnemies(state *State, ctx object.UpdateContext, wheel *object.Wheel) (hit bool) {
	bounds := wheel.Bounds()
	for _, q := range state.Queues {
		for _, e := range q {
			e.Update(ctx)
			if e.CollidesWith(bounds) {
				hit = true
			}
		}
	}
	return hit
}

// collidingEnemy returns the first enemy overlapping the wheel, or nil.
func collidingEnemy(state *State, wheel *object.Wheel) *object.Enemy {
	bounds := wheel.Bounds()
	for _, q := range state.Queues {
		for _, e := range q {
			if e.CollidesWith(bounds) {
				return e
			}
		}
	}
	return nil
}
