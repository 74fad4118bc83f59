package engine

// Source is the randomness spawn draws from. *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// Tile is a value placed at a position.
type Tile struct {
	Cell
	Value uint32
}

// Spawn places a new tile on a random empty cell: 4 with probability 1/10,
// otherwise 2. It returns the placed tile, or false when the board is full,
// in which case b is left unchanged.
func Spawn(b *Board, rng Source) (Tile, bool) {
	empty := EmptyCells(*b)
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[rng.IntN(len(empty))]

	value := uint32(2)
	if rng.IntN(10) == 0 {
		value = 4
	}

	b.Set(cell, value)
	return Tile{Cell: cell, Value: value}, true
}
