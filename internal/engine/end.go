package engine

// IsTerminal reports whether no legal move remains.
//
// A board with an empty cell is never terminal. Otherwise a private copy is
// slid up, down, right and left in sequence, each slide seeing the previous
// result; the board is terminal when the copy ends identical to b.
func IsTerminal(b Board) bool {
	if HasEmptyCell(b) {
		return false
	}

	trial := b
	for _, d := range Directions {
		Slide(&trial, d)
	}
	return trial == b
}

// HasMove reports whether at least one direction, tried on its own against
// b, changes the board.
func HasMove(b Board) bool {
	for _, d := range Directions {
		if CanSlide(b, d) {
			return true
		}
	}
	return false
}

// HasReachedThreshold reports whether any cell equals Threshold.
func HasReachedThreshold(b Board) bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == Threshold {
				return true
			}
		}
	}
	return false
}
