package game

// Snapshot captures the complete engine state for determinism testing.
type Snapshot struct {
	Board   Board
	Score   int
	MaxTile int
	Status  Status
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:   e.board,
		Score:   e.score,
		MaxTile: MaxTile(e.board),
		Status:  e.Status(),
	}
}
