package core

// Minimum terminal size for the classic 80x24 layout.
const (
	MinScreenW = 80
	MinScreenH = 24
)
