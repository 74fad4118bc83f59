// Package engine implements the 2048 board: slide-and-merge, tile spawning
// and end-of-game detection. It has no terminal or I/O dependencies so the
// rules stay pure and testable.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Threshold is the tile value that triggers the one-time win notification.
const Threshold = 2048

// Board is a 4x4 grid indexed as [row][col]. A zero cell is empty, any other
// value is a power of two >= 2.
//
// Cells are 32-bit so tiles well past 32768 stay representable.
type Board [Size][Size]uint32

// Cell addresses a single board position.
type Cell struct {
	Row int
	Col int
}

// Direction is a move direction. Only the four declared values are valid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction in the order the terminal check
// applies them.
var Directions = [...]Direction{Up, Down, Right, Left}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// At returns the value at c.
func (b *Board) At(c Cell) uint32 {
	return b[c.Row][c.Col]
}

// Set stores v at c.
func (b *Board) Set(c Cell, v uint32) {
	b[c.Row][c.Col] = v
}

// EmptyCells returns all empty positions in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// CountTiles returns the number of non-empty cells.
func CountTiles(b Board) int {
	n := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// Sum returns the total of all tile values.
func Sum(b Board) uint64 {
	var total uint64
	for y := range Size {
		for x := range Size {
			total += uint64(b[y][x])
		}
	}
	return total
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) uint32 {
	var maxVal uint32
	for y := range Size {
		for x := range Size {
			maxVal = max(maxVal, b[y][x])
		}
	}
	return maxVal
}

// Valid reports whether every non-empty cell holds a power of two >= 2.
func Valid(b Board) bool {
	for y := range Size {
		for x := range Size {
			if !validTile(b[y][x]) {
				return false
			}
		}
	}
	return true
}

func validTile(v uint32) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// String renders the board as rows separated by "/", e.g. "2 2 0 0/0 0 0 0/...".
// ParseBoard accepts the same format.
func (b Board) String() string {
	rows := make([]string, Size)
	for y := range Size {
		cols := make([]string, Size)
		for x := range Size {
			cols[x] = strconv.FormatUint(uint64(b[y][x]), 10)
		}
		rows[y] = strings.Join(cols, " ")
	}
	return strings.Join(rows, "/")
}

// ParseBoard parses the format produced by Board.String. Cells may be
// separated by spaces or commas.
func ParseBoard(s string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return b, fmt.Errorf("engine: board needs %d rows, got %d", Size, len(rows))
	}

	for y, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		if len(fields) != Size {
			return b, fmt.Errorf("engine: row %d needs %d cells, got %d", y+1, Size, len(fields))
		}
		for x, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return b, fmt.Errorf("engine: row %d col %d: %w", y+1, x+1, err)
			}
			if !validTile(uint32(v)) {
				return b, fmt.Errorf("engine: row %d col %d: %d is not a tile value", y+1, x+1, v)
			}
			b[y][x] = uint32(v)
		}
	}

	return b, nil
}
