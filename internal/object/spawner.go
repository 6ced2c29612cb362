package object

import (
	"math/rand"

	"github.com/tomz197/wheel/internal/physics"
)

// Spawner creates enemies on a circle around the wheel, far enough out that
// they enter from outside the visible area.
type Spawner struct {
	rng         *rand.Rand
	center      physics.Vec
	radius      float64
	enemyRadius float64
}

// NewSpawner creates a spawner for the given play area. The spawn circle is
// centered on the screen center with a radius of half the larger dimension.
func NewSpawner(rng *rand.Rand, screen Screen, enemyRadius float64) *Spawner {
	return &Spawner{
		rng:         rng,
		center:      screen.Center(),
		radius:      float64(max(screen.Width, screen.Height)) / 2,
		enemyRadius: enemyRadius,
	}
}

// Radius returns the spawn circle radius.
func (s *Spawner) Radius() float64 {
	return s.radius
}

// Spawn picks a segment uniformly, then a uniform angle inside its sector,
// and returns a new enemy on the spawn circle at that angle.
func (s *Spawner) Spawn() *Enemy {
	seg := Segment(s.rng.Intn(NumSegments))
	start, end := seg.Sector()
	angle := start + s.rng.Float64()*(end-start)
	pos := physics.Polar(s.center, angle, s.radius)
	return NewEnemy(pos, seg, s.enemyRadius)
}
