package engine

import (
	"math/rand/v2"
	"testing"
)

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name: "no empty cells and no merges",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: true,
		},
		{
			name: "horizontal merge available",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "vertical merge available",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
			expected: false,
		},
		{
			name: "one empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name:     "empty board",
			board:    Board{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board
			if got := IsTerminal(tt.board); got != tt.expected {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.expected)
			}
			if tt.board != before {
				t.Error("IsTerminal must not modify the board")
			}
		})
	}
}

func TestIsTerminalFalseWithEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 2048))

	for i := 0; i < 2000; i++ {
		var b Board
		for y := range Size {
			for x := range Size {
				b[y][x] = 1 << (1 + rng.IntN(16))
			}
		}
		// Clear between one and sixteen cells.
		for range 1 + rng.IntN(Size*Size) {
			b[rng.IntN(Size)][rng.IntN(Size)] = 0
		}

		if !HasEmptyCell(b) {
			t.Fatalf("case %d: board has no empty cell:\n%v", i, b)
		}
		if IsTerminal(b) {
			t.Fatalf("case %d: board with an empty cell reported terminal:\n%v", i, b)
		}
	}
}

func TestIsTerminalDoesNotMutateCaller(t *testing.T) {
	b := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	before := b

	IsTerminal(b)

	if b != before {
		t.Errorf("board changed after IsTerminal:\n%v", b)
	}
}

// The terminal check slides one shared copy in sequence instead of testing
// each direction on its own. On a full board both answers agree: any merge
// drops the tile count, and slides never raise it again.
func TestIsTerminalMatchesIndependentCheckOnFullBoards(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for i := 0; i < 5000; i++ {
		var b Board
		for y := range Size {
			for x := range Size {
				b[y][x] = 1 << (1 + rng.IntN(4))
			}
		}

		if IsTerminal(b) == HasMove(b) {
			t.Fatalf("IsTerminal and HasMove disagree on %v", b)
		}
	}
}

func TestHasMove(t *testing.T) {
	if !HasMove(Board{{2}}) {
		t.Error("a lone tile can move")
	}
	if HasMove(Board{}) {
		t.Error("an empty board has nothing to move")
	}
}

func TestHasReachedThreshold(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 4, 4},
		{8, 16, 32, 64},
	}
	if HasReachedThreshold(b) {
		t.Error("no 2048 tile yet")
	}

	b[2][3] = Threshold
	if !HasReachedThreshold(b) {
		t.Error("2048 tile present")
	}

	beyond := Board{{4096}}
	if HasReachedThreshold(beyond) {
		t.Error("threshold means exactly 2048")
	}
}

func TestMaxTile(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(b); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(b)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want (0,1)", cells[0])
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("2,0,0,0/0 4 0 0/0 0 8 0/0 0 0 2048")
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	if b[1][1] != 4 || b[3][3] != 2048 {
		t.Errorf("ParseBoard parsed %v", b)
	}
	if b.String() != "2 0 0 0/0 4 0 0/0 0 8 0/0 0 0 2048" {
		t.Errorf("String() = %q", b.String())
	}

	bad := []string{
		"2 0 0 0/0 0 0 0/0 0 0 0",
		"2 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"3 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"x 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"1 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
	}
	for _, s := range bad {
		if _, err := ParseBoard(s); err == nil {
			t.Errorf("ParseBoard(%q) should fail", s)
		}
	}
}
