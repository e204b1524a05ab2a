package game

import "testing"

func occupiedCount(board Board) int {
	return BoardSize*BoardSize - len(EmptyCells(board))
}

func TestNewEngineSeedsTwoTiles(t *testing.T) {
	e := NewEngine(42)
	board := e.Board()

	if n := occupiedCount(board); n != 2 {
		t.Fatalf("new engine has %d occupied cells, want 2", n)
	}

	for _, row := range board {
		for _, val := range row {
			if val != 0 && val != 2 && val != 4 {
				t.Errorf("seed tile value = %d, want 2 or 4", val)
			}
		}
	}

	if e.Score() != 0 {
		t.Errorf("new engine score = %d, want 0", e.Score())
	}
	if e.Status() != StatusActive {
		t.Errorf("new engine status = %v, want active", e.Status())
	}
}

func TestDeterministicSeed(t *testing.T) {
	e1 := NewEngine(12345)
	e2 := NewEngine(12345)

	if e1.Board() != e2.Board() {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", e1.Board(), e2.Board())
	}

	// And the same spawn sequence afterwards.
	for range 4 {
		e1.SpawnTile()
		e2.SpawnTile()
	}
	if e1.Board() != e2.Board() {
		t.Error("same seed should produce same spawn sequence")
	}
}

func TestSpawnTile(t *testing.T) {
	e := NewEngine(7)

	for {
		before := e.Board()
		n := occupiedCount(before)

		ok := e.SpawnTile()
		after := e.Board()

		if n == BoardSize*BoardSize {
			// Full board: spawn is a silent no-op.
			if ok {
				t.Error("SpawnTile on full board returned true")
			}
			if after != before {
				t.Error("SpawnTile on full board modified the board")
			}
			return
		}

		if !ok {
			t.Fatalf("SpawnTile returned false with %d empty cells", BoardSize*BoardSize-n)
		}
		if got := occupiedCount(after); got != n+1 {
			t.Fatalf("SpawnTile changed occupied count %d -> %d, want %d", n, got, n+1)
		}

		// Exactly one previously-empty cell gained a 2 or a 4.
		for y := range BoardSize {
			for x := range BoardSize {
				if before[y][x] == after[y][x] {
					continue
				}
				if before[y][x] != 0 {
					t.Fatalf("SpawnTile overwrote occupied cell (%d,%d)", x, y)
				}
				if v := after[y][x]; v != 2 && v != 4 {
					t.Fatalf("SpawnTile wrote %d, want 2 or 4", v)
				}
			}
		}
	}
}

func TestApplyMoveAccumulatesScore(t *testing.T) {
	e := NewEngine(1)
	e.board = Board{
		{2, 2, 0, 0},
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e.score = 10

	res := e.ApplyMove(DirLeft)

	if !res.Changed {
		t.Error("ApplyMove should report change")
	}
	if res.ScoreDelta != 4+8 {
		t.Errorf("ScoreDelta = %d, want 12", res.ScoreDelta)
	}
	if e.Score() != 10+12 {
		t.Errorf("Score = %d, want 22", e.Score())
	}
	if res.Board != e.Board() {
		t.Error("MoveResult board should match engine board")
	}
}

func TestApplyMoveNoChange(t *testing.T) {
	e := NewEngine(1)
	e.board = Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := e.ApplyMove(DirLeft)

	if res.Changed {
		t.Error("ApplyMove on left-aligned board should report no change")
	}
	if res.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, want 0", res.ScoreDelta)
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d, want 0", e.Score())
	}
}

func TestApplyMoveTwiceIsNoOp(t *testing.T) {
	// Without a spawn in between, repeating a move cannot change the
	// board again: the first move leaves every row fully compacted and
	// merge-resolved.
	e := NewEngine(99)
	e.board = Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{8, 0, 2, 16},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		e.ApplyMove(dir)
		res := e.ApplyMove(dir)
		if res.Changed {
			t.Errorf("second ApplyMove(%v) reported change:\n%v", dir, res.Board)
		}
	}
}

func TestStatusCheckerboard(t *testing.T) {
	e := NewEngine(3)
	e.board = Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if e.Status() != StatusOver {
		t.Error("checkerboard with no empty cells should be over")
	}

	// A single empty cell reopens the game.
	e.board[1][2] = 0
	if e.Status() != StatusActive {
		t.Error("checkerboard with an empty cell should be active")
	}
}

func TestMoveSpawnStatusFlow(t *testing.T) {
	// The presenter's loop: move, spawn on change, then check status.
	e := NewEngine(2024)

	for range 200 {
		if e.Status() == StatusOver {
			break
		}

		moved := false
		for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp} {
			sumBefore := TileSum(e.Board())
			scoreBefore := e.Score()

			res := e.ApplyMove(dir)
			if !res.Changed {
				continue
			}
			moved = true

			if e.Score() < scoreBefore {
				t.Fatal("score decreased")
			}
			if TileSum(e.Board()) < sumBefore {
				t.Fatal("tile mass decreased on move")
			}
			if !e.SpawnTile() {
				t.Fatal("spawn failed after a changed move")
			}
			break
		}

		if !moved {
			// No direction changed the board: must be game over.
			if e.Status() != StatusOver {
				t.Fatal("no move possible but status is active")
			}
			break
		}
	}
}

func TestSnapshot(t *testing.T) {
	e := NewEngine(5)
	e.board = Board{
		{2, 4, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e.score = 64

	snap := e.Snapshot()

	if snap.Board != e.Board() {
		t.Error("snapshot board mismatch")
	}
	if snap.Score != 64 {
		t.Errorf("snapshot score = %d, want 64", snap.Score)
	}
	if snap.MaxTile != 128 {
		t.Errorf("snapshot max tile = %d, want 128", snap.MaxTile)
	}
	if snap.Status != StatusActive {
		t.Errorf("snapshot status = %v, want active", snap.Status)
	}
}
