// Package game implements the 2048 grid engine: the 4x4 board, the
// slide-and-merge move primitive, tile spawning and terminal-state
// detection. It contains pure logic with no external dependencies so it
// can be unit-tested without a terminal.
package game

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension. The game is fixed at 4x4.
const BoardSize = 4

// Board represents a 4x4 game board. 0 is an empty cell; every non-zero
// cell holds a power of two.
type Board [BoardSize][BoardSize]int

// slidePasses is how many times the compact-left primitive is applied
// per move. Three passes let merges cascade within a single key press,
// so [2,2,2,2] collapses all the way to [8,0,0,0]; three is also enough
// to reach a fixpoint on a 4-wide row, which makes a repeated move a
// guaranteed no-op. Setting this to 1 gives the standard rule where a
// tile merges at most once per move.
const slidePasses = 3

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// compactRow slides a single row to the left, merging equal adjacent
// tiles. A merged tile cannot merge again within the same call.
// Returns the compacted row and the score gained from merges.
func compactRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	merged := false

	for i := range BoardSize {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
		} else {
			result[writePos] = row[i]
			merged = false
			writePos++
		}
	}

	return result, score
}

// slideLeft applies compactRow to every row.
func slideLeft(board Board) (Board, int) {
	var result Board
	total := 0

	for y := range BoardSize {
		row, score := compactRow(board[y])
		result[y] = row
		total += score
	}

	return result, total
}

// rotateCW rotates the board 90 degrees clockwise.
func rotateCW(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[BoardSize-1-x][y]
		}
	}
	return result
}

// rotateCCW rotates the board 90 degrees counter-clockwise.
func rotateCCW(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][BoardSize-1-y]
		}
	}
	return result
}

// flipH mirrors the board horizontally.
func flipH(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

func identity(board Board) Board {
	return board
}

// canonical returns the transform pair that maps a move in dir onto the
// compact-left primitive and back:
//
//	up    = rotate CCW, compact left, rotate CW
//	down  = rotate CW, compact left, rotate CCW
//	right = flip horizontally, compact left, flip back
//	left  = compact left directly
func canonical(dir Direction) (to, from func(Board) Board) {
	switch dir {
	case DirUp:
		return rotateCCW, rotateCW
	case DirDown:
		return rotateCW, rotateCCW
	case DirRight:
		return flipH, flipH
	default:
		return identity, identity
	}
}

// Slide performs a move in the given direction.
// Returns the new board, the score gained, and whether the board
// changed (cell-by-cell comparison against the input).
func Slide(board Board, dir Direction) (Board, int, bool) {
	to, from := canonical(dir)

	work := to(board)
	total := 0
	for range slidePasses {
		next, score := slideLeft(work)
		work = next
		total += score
	}

	result := from(work)
	return result, total, result != board
}

// EmptyCells returns coordinates of all empty cells.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values on the board.
func TileSum(board Board) int {
	sum := 0
	for y := range BoardSize {
		for x := range BoardSize {
			sum += board[y][x]
		}
	}
	return sum
}
