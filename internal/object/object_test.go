package object

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/physics"
)

// sectorForAngle maps a screen-space angle in radians to the segment whose sector contains it.
func sectorForAngle(angle float64) Segment {
	deg := angle * 180 / math.Pi
	deg = math.Mod(deg+45, 360)
	if deg < 0 {
		deg += 360
	}
	return Segment(int(deg / 90))
}

type collector struct {
	objs []Object
}

func (c *collector) Emit(obj Object) {
	c.objs = append(c.objs, obj)
}

func TestSegmentForKey(t *testing.T) {
	tests := []struct {
		key  byte
		want Segment
		ok   bool
	}{
		{'d', SegmentD, true},
		{'s', SegmentS, true},
		{'a', SegmentA, true},
		{'w', SegmentW, true},
		{'x', NoSegment, false},
		{'D', NoSegment, false},
		{0, NoSegment, false},
	}

	for _, tt := range tests {
		got, ok := SegmentForKey(tt.key)
		assert.Equal(t, tt.ok, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got, "key %q", tt.key)
	}
}

func TestSegmentAttributes(t *testing.T) {
	assert.Equal(t, "#0000ff", SegmentD.Color().Hex())
	assert.Equal(t, "#ffff00", SegmentS.Color().Hex())
	assert.Equal(t, "#ff0000", SegmentA.Color().Hex())
	assert.Equal(t, "#00ff00", SegmentW.Color().Hex())

	for i, seg := range Segments() {
		assert.Equal(t, Segment(i), seg)
		k, ok := SegmentForKey(seg.Key())
		require.True(t, ok)
		assert.Equal(t, seg, k)
	}
	assert.Equal(t, "none", NoSegment.String())
	assert.Equal(t, "W", SegmentW.String())
}

func TestSegmentSectors(t *testing.T) {
	// Sector midpoints: right, down, left, up in screen coordinates.
	mids := map[Segment]physics.Vec{
		SegmentD: {X: 1, Y: 0},
		SegmentS: {X: 0, Y: 1},
		SegmentA: {X: -1, Y: 0},
		SegmentW: {X: 0, Y: -1},
	}
	for seg, dir := range mids {
		start, end := seg.Sector()
		assert.InDelta(t, math.Pi/2, end-start, 1e-12)
		mid := (start + end) / 2
		assert.InDelta(t, dir.X, math.Cos(mid), 1e-9, "segment %s", seg)
		assert.InDelta(t, dir.Y, math.Sin(mid), 1e-9, "segment %s", seg)
	}
}

func TestSpawnerPlacement(t *testing.T) {
	screen := NewScreen(1200, 1000)
	center := screen.Center()

	for seed := int64(0); seed < 20; seed++ {
		sp := NewSpawner(rand.New(rand.NewSource(seed)), screen, 10)
		assert.Equal(t, 600.0, sp.Radius())

		for i := 0; i < 200; i++ {
			e := sp.Spawn()
			require.True(t, e.Segment.Valid())
			assert.InDelta(t, 600, physics.Distance(e.Pos, center), 1e-6)
			assert.Equal(t, 10.0, e.Radius)

			d := e.Pos.Sub(center)
			angle := math.Atan2(d.Y, d.X)
			assert.Equal(t, e.Segment, sectorForAngle(angle), "seed %d spawn %d at %v", seed, i, e.Pos)
		}
	}
}

func TestSpawnerCoversAllSegments(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(1)), NewScreen(1200, 1000), 10)
	var seen [NumSegments]int
	for i := 0; i < 400; i++ {
		seen[sp.Spawn().Segment]++
	}
	for seg, n := range seen {
		assert.Positive(t, n, "segment %d never spawned", seg)
	}
}

func TestEnemyApproachesTarget(t *testing.T) {
	target := physics.Vec{X: 600, Y: 500}
	e := NewEnemy(physics.Vec{X: 1200, Y: 500}, SegmentD, 10)
	ctx := UpdateContext{Target: target, Speed: 1}

	prev := physics.Distance(e.Pos, target)
	for i := 0; i < 50; i++ {
		assert.False(t, e.Update(ctx))
		d := physics.Distance(e.Pos, target)
		assert.Less(t, d, prev)
		prev = d
	}
	assert.InDelta(t, 550, prev, 1e-9)
}

func TestEnemyStopsAtTarget(t *testing.T) {
	target := physics.Vec{X: 600, Y: 500}
	e := NewEnemy(physics.Vec{X: 600.5, Y: 500}, SegmentA, 10)
	e.Update(UpdateContext{Target: target, Speed: 2})
	assert.Equal(t, target, e.Pos)
}

func TestEnemyWheelCollision(t *testing.T) {
	sprite := image.NewRGBA(image.Rect(0, 0, 171, 171))
	wheel := NewWheel(physics.Vec{X: 600, Y: 500}, sprite)
	assert.Equal(t, 171.0, wheel.Width)
	assert.Equal(t, 171.0, wheel.Height)

	tests := []struct {
		name string
		pos  physics.Vec
		want bool
	}{
		{"center", physics.Vec{X: 600, Y: 500}, true},
		{"far away", physics.Vec{X: 1200, Y: 500}, false},
		{"overlapping right edge", physics.Vec{X: 695, Y: 500}, true},
		{"touching right edge", physics.Vec{X: 695.5, Y: 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(tt.pos, SegmentD, 10)
			assert.Equal(t, tt.want, e.CollidesWith(wheel.Bounds()))
		})
	}
}

func TestDrawEnemyAndWheel(t *testing.T) {
	c := draw.NewScaledCanvas(120, 50, 1200, 1000)
	ctx := DrawContext{Canvas: c}

	sprite := image.NewRGBA(image.Rect(0, 0, 171, 171))
	green := color.RGBA{G: 255, A: 255}
	for y := 0; y < 171; y++ {
		for x := 0; x < 171; x++ {
			sprite.Set(x, y, green)
		}
	}
	NewWheel(physics.Vec{X: 600, Y: 500}, sprite).Draw(ctx)
	assert.Equal(t, draw.RGB(0, 255, 0), c.Pixel(60, 50))

	NewEnemy(physics.Vec{X: 100, Y: 100}, SegmentA, 10).Draw(ctx)
	assert.Equal(t, SegmentA.Color(), c.Pixel(10, 10))
}

func TestSpawnBurst(t *testing.T) {
	var col collector
	SpawnBurst(physics.Vec{X: 10, Y: 10}, SegmentS.Color(), 8, rand.New(rand.NewSource(3)), &col)
	require.Len(t, col.objs, 8)

	p := col.objs[0].(*Particle)
	life := p.Life
	for i := 0; i < life-1; i++ {
		assert.False(t, p.Update(UpdateContext{}))
	}
	assert.True(t, p.Update(UpdateContext{}))

	for _, obj := range col.objs {
		ReleaseObject(obj)
	}
}

func TestSpawnBurstNilEmitter(t *testing.T) {
	assert.NotPanics(t, func() {
		SpawnBurst(physics.Vec{}, draw.White, 4, rand.New(rand.NewSource(1)), nil)
	})
}
