package sim

// Snapshot is a read-only copy of everything the presentation layer needs.
// Timers are the values published by the most recent tick.
type Snapshot struct {
	Tick                uint64
	Status              Status
	Width               int
	Height              int
	Segments            []Position // Head first
	Current             Vector
	Pending             Vector
	Orb                 Position
	OrbPlaced           bool
	Score               int
	ElapsedSeconds      int
	OrbRemainingSeconds float64
}

// Snapshot returns the current engine state. The segment slice is a copy.
func (e *Engine) Snapshot() Snapshot {
	segments := make([]Position, len(e.snake))
	copy(segments, e.snake)

	return Snapshot{
		Tick:                e.tick,
		Status:              e.status,
		Width:               e.grid.Width,
		Height:              e.grid.Height,
		Segments:            segments,
		Current:             e.current,
		Pending:             e.pending,
		Orb:                 e.orb.Pos,
		OrbPlaced:           e.orb.Placed,
		Score:               e.score,
		ElapsedSeconds:      e.elapsedSeconds,
		OrbRemainingSeconds: e.orbRemaining,
	}
}

// Head returns the head position, or false for an empty snake.
func (s Snapshot) Head() (Position, bool) {
	if len(s.Segments) == 0 {
		return Position{}, false
	}
	return s.Segments[0], true
}
