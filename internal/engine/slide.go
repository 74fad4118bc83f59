package engine

// lineCells returns the positions of line i for direction d, ordered from the
// edge tiles move toward. Rows are lines for Left/Right, columns for Up/Down.
func lineCells(d Direction, i int) [Size]Cell {
	var cells [Size]Cell
	for k := range Size {
		switch d {
		case Left:
			cells[k] = Cell{Row: i, Col: k}
		case Right:
			cells[k] = Cell{Row: i, Col: Size - 1 - k}
		case Up:
			cells[k] = Cell{Row: k, Col: i}
		case Down:
			cells[k] = Cell{Row: Size - 1 - k, Col: i}
		}
	}
	return cells
}

// compact shifts non-zero values toward index 0, keeping their order.
func compact(line *[Size]uint32) {
	w := 0
	for r := range Size {
		if line[r] != 0 {
			line[w] = line[r]
			w++
		}
	}
	for ; w < Size; w++ {
		line[w] = 0
	}
}

// merge combines adjacent equal pairs of a compacted line, scanning from
// index 0. The pair's second cell is cleared so no tile merges twice.
func merge(line *[Size]uint32) uint32 {
	var delta uint32
	for k := 0; k < Size-1; k++ {
		if line[k] == 0 || line[k] != line[k+1] {
			continue
		}
		line[k] *= 2
		line[k+1] = 0
		delta += line[k]
		k++
	}
	return delta
}

// slideLine runs compact, merge, compact on one line.
func slideLine(line *[Size]uint32) uint32 {
	compact(line)
	delta := merge(line)
	compact(line)
	return delta
}

// Slide moves every tile toward the edge named by d, merging equal
// neighbours once per move, and returns the sum of the merged values.
// The board is changed in place. An invalid direction leaves it untouched.
func Slide(b *Board, d Direction) uint32 {
	if !d.Valid() {
		return 0
	}

	var delta uint32
	for i := range Size {
		cells := lineCells(d, i)

		var line [Size]uint32
		for k, c := range cells {
			line[k] = b.At(c)
		}

		delta += slideLine(&line)

		for k, c := range cells {
			b.Set(c, line[k])
		}
	}
	return delta
}

// CanSlide reports whether sliding b toward d would change any cell.
func CanSlide(b Board, d Direction) bool {
	next := b
	Slide(&next, d)
	return next != b
}
