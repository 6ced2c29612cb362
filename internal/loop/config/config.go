// Package config centralizes all tunable game parameters.
package config

import "time"

// Play area in logical units. Rendering scales it to fit the terminal.
const (
	ScreenWidth  = 1200
	ScreenHeight = 1000
)

// Enemies
const (
	EnemyRadius       = 10
	InitialEnemySpeed = 1.0 // Logical units per frame
	EnemySpeedStep    = 0.1 // Added on every escalation
)

// Spawning, in frames
const (
	InitialSpawnInterval = 40
	SpawnIntervalStep    = 5 // Subtracted on every escalation
	MinSpawnInterval     = 20
)

// Difficulty escalates every EscalationSeconds of play.
const (
	EscalationSeconds = 10
	EscalationFrames  = TargetFPS * EscalationSeconds
)

// Wheel sprite is shrunk by this divisor on load.
const SpriteScaleDivisor = 4

// Effects
const (
	HitBurstParticles = 12
)

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
