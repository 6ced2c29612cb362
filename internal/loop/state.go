package loop

import (
	"github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/object"
)

// Phase is the current phase of a game session.
type Phase int

const (
	PhasePlaying        Phase = iota // Enemies spawn and move
	PhaseGameOverPrompt              // Simulation frozen, waiting for Y/N
	PhaseTerminated                  // Session is over
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOverPrompt:
		return "game-over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State holds everything that changes during a session.
// Each enemy lives in exactly one queue, the one for its segment; queues are
// FIFO with the oldest enemy at index 0.
type State struct {
	Score         int
	Queues        [object.NumSegments][]*object.Enemy
	Speed         float64
	SpawnInterval int
	Frame         int
	Phase         Phase

	Effects []object.Object // Hit bursts; visual only
	toSpawn []object.Object // Effects to add after the current update cycle
}

// NewState creates a fresh playing state.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the initial values and returns to the playing phase.
func (s *State) Reset() {
	for i := range s.Queues {
		s.Queues[i] = s.Queues[i][:0]
	}
	for _, e := range s.Effects {
		object.ReleaseObject(e)
	}
	for _, e := range s.toSpawn {
		object.ReleaseObject(e)
	}
	s.Effects = s.Effects[:0]
	s.toSpawn = s.toSpawn[:0]

	s.Score = 0
	s.Speed = config.InitialEnemySpeed
	s.SpawnInterval = config.InitialSpawnInterval
	s.Frame = 0
	s.Phase = PhasePlaying
}

// Enqueue appends an enemy to the tail of its segment's queue.
func (s *State) Enqueue(e *object.Enemy) {
	s.Queues[e.Segment] = append(s.Queues[e.Segment], e)
}

// Destroy removes the head of the segment's queue.
// Returns false if the queue was empty.
func (s *State) Destroy(seg object.Segment) (*object.Enemy, bool) {
	q := s.Queues[seg]
	if len(q) == 0 {
		return nil, false
	}
	head := q[0]
	q[0] = nil
	s.Queues[seg] = q[1:]
	return head, true
}

// EnemyCount returns the number of live enemies across all queues.
func (s *State) EnemyCount() int {
	n := 0
	for _, q := range s.Queues {
		n += len(q)
	}
	return n
}

// Emit queues an effect to be added after the current update cycle.
// Implements object.Emitter.
func (s *State) Emit(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued effects and clears the queue.
func (s *State) FlushSpawned() {
	s.Effects = append(s.Effects, s.toSpawn...)
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}
