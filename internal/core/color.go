package core

// Color names a foreground or background color for a screen cell.
// Frontends map it to concrete terminal colors.
type Color uint8

// Predefined colors for text and panels.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBlack
	ColorGray
)

// Tile background colors, one per tile value from 2 to 4096.
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTile4096
)

// TileColor returns the background for a tile value. Empty cells and values
// above 4096 have no background.
func TileColor(value uint32) Color {
	c := ColorTile2
	for v := uint32(2); v <= 4096; v *= 2 {
		if v == value {
			return c
		}
		c++
	}
	return ColorDefault
}

// TileValue is the inverse of TileColor. It returns 0 for non-tile colors.
func (c Color) TileValue() uint32 {
	if c < ColorTile2 || c > ColorTile4096 {
		return 0
	}
	return 2 << (c - ColorTile2)
}
