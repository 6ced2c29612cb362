package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark shown when an enemy is destroyed.
type Particle struct {
	Pos     physics.Vec
	Vel     physics.Vec // Logical units per frame
	Life    int         // Frames remaining
	MaxLife int
	Drag    float64 // Velocity multiplier per frame (1.0 = no drag)
	Color   draw.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vec, life int, col draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Life = life
	p.MaxLife = life
	p.Drag = 0.92
	p.Color = col
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst emits count particles flying outward from pos.
func SpawnBurst(pos physics.Vec, col draw.Color, count int, rng *rand.Rand, emitter Emitter) {
	if emitter == nil || rng == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 3 + rng.Float64()*5
		life := 15 + rng.Intn(16)
		vel := physics.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		emitter.Emit(NewParticle(pos, vel, life, col))
	}
}

// Update moves the particle and counts down its lifetime.
func (p *Particle) Update(_ UpdateContext) bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}
	p.Vel = p.Vel.Scale(p.Drag)
	p.Pos = p.Pos.Add(p.Vel)
	return false
}

// Draw renders the particle as a single pixel fading toward black.
func (p *Particle) Draw(ctx DrawContext) {
	if p.Life <= 0 || p.MaxLife <= 0 {
		return
	}
	fade := 1 - float64(p.Life)/float64(p.MaxLife)
	ctx.Canvas.SetFloat(p.Pos.X, p.Pos.Y, p.Color.Blend(draw.Black, fade))
}
