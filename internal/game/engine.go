package game

import "math/rand"

// Status represents the derived game state.
type Status int

const (
	StatusActive Status = iota
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

const (
	// seedTiles is the number of tiles placed at construction.
	seedTiles = 2

	// spawnFourProb is the probability that a spawned tile is a 4
	// rather than a 2. Spawns pick 2 or 4 uniformly.
	spawnFourProb = 0.5
)

// Engine owns a single game: the board, the score and the tile RNG.
// Instances are independent, so multiple games can run side by side.
// The engine is not safe for concurrent use; the caller is expected to
// drive it from a single event loop.
type Engine struct {
	rng   *rand.Rand
	board Board
	score int
}

// NewEngine creates a game with two seed tiles placed at random.
// The same seed always produces the same game.
func NewEngine(seed int64) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(seed)),
	}
	for range seedTiles {
		e.SpawnTile()
	}
	return e
}

// MoveResult describes the outcome of a single ApplyMove call.
type MoveResult struct {
	Board      Board
	Changed    bool // true iff the board differs cell-by-cell from before
	ScoreDelta int  // sum of merged-tile values created by this move
}

// ApplyMove slides the board in the given direction and accumulates the
// merge score. When Changed is true the caller is expected to invoke
// SpawnTile and then Status.
func (e *Engine) ApplyMove(dir Direction) MoveResult {
	next, delta, changed := Slide(e.board, dir)
	e.board = next
	e.score += delta

	return MoveResult{
		Board:      next,
		Changed:    changed,
		ScoreDelta: delta,
	}
}

// SpawnTile places a 2 or a 4 in a uniformly chosen empty cell.
// Returns false without touching the board when no empty cell exists;
// that case is unreachable through the normal move flow, since a spawn
// only follows a move that changed the board.
func (e *Engine) SpawnTile() bool {
	empty := EmptyCells(e.board)
	if len(empty) == 0 {
		return false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < spawnFourProb {
		value = 4
	}
	e.board[cell.Y][cell.X] = value

	return true
}

// Status derives the current game state. The game is over once no cell
// is empty and no two adjacent cells hold equal values. The transition
// is one-directional: no move can reopen a finished board.
func (e *Engine) Status() Status {
	if CanMove(e.board) {
		return StatusActive
	}
	return StatusOver
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}
