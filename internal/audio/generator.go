package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Envelope applies a linear fade-out over the first total samples of a streamer
// and ends after them.
type Envelope struct {
	Streamer beep.Streamer
	total    int
	pos      int
}

// NewEnvelope wraps s so that it fades from full volume to silence over d.
func NewEnvelope(sr beep.SampleRate, d time.Duration, s beep.Streamer) *Envelope {
	return &Envelope{Streamer: s, total: max(1, sr.N(d))}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(e.pos)/float64(e.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}

// SweepGenerator produces a square-ish tone whose frequency slides
// linearly between two frequencies over a fixed duration, then stops.
type SweepGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	samples int
	pos     int
	phase   float64
}

// NewSweepGenerator creates a frequency sweep generator.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*t
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Soft square wave: a clipped sine.
		v := math.Max(-0.6, math.Min(0.6, math.Sin(2*math.Pi*g.phase)))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// HitSound is a short two-note rising blip.
func HitSound(sr beep.SampleRate) beep.Streamer {
	low, err := generators.SineTone(sr, 660)
	if err != nil {
		return beep.Silence(0)
	}
	high, err := generators.SineTone(sr, 990)
	if err != nil {
		return beep.Silence(0)
	}
	blip := beep.Seq(
		NewEnvelope(sr, 40*time.Millisecond, low),
		NewEnvelope(sr, 60*time.Millisecond, high),
	)
	return withVolume(blip, 0.3)
}

// GameOverSound is a falling buzz.
func GameOverSound(sr beep.SampleRate) beep.Streamer {
	sweep := NewSweepGenerator(sr, 440, 110, 600*time.Millisecond)
	return withVolume(NewEnvelope(sr, 600*time.Millisecond, sweep), 0.4)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
