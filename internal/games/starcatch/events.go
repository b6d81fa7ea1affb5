package starcatch

// GameOverEvent is emitted once when an enemy destroys the player.
type GameOverEvent struct {
	Score uint32
}

// eventQueue is a single-producer queue drained once per tick by its one consumer.
type eventQueue[T any] struct {
	items []T
}

func (q *eventQueue[T]) push(v T) {
	q.items = append(q.items, v)
}

// drain returns the queued events and empties the queue.
func (q *eventQueue[T]) drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Signals are per-tick cues for collaborators such as audio.
type Signals struct {
	Bounced         bool // At least one enemy reflected off an edge
	StarsCollected  int  // Stars picked up this tick
	PlayerDestroyed bool // An enemy hit the player
	EnemiesSpawned  int  // Enemies created by the spawn timer
	StarsSpawned    int  // Stars created by the spawn timer
}

// Any reports whether any cue fired.
func (s Signals) Any() bool {
	return s.Bounced || s.StarsCollected > 0 || s.PlayerDestroyed || s.EnemiesSpawned > 0 || s.StarsSpawned > 0
}
