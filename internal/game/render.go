package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Layout of the classic 80x24 screen.
const (
	tileW     = 10 // Tile width without border
	tileH     = 5  // Tile height without border
	cellW     = tileW + 1
	cellH     = tileH + 1
	boardW    = engine.Size * cellW // Right border included
	panelX    = boardW + 1
	panelW    = 36
	statusRow = core.MinScreenH - 1
)

var controlsArt = []string{
	"    Use your arrow keys to play",
	"",
	"               _____",
	"              |     |",
	"              |  ^  |",
	"              |  |  |",
	"        -------------------",
	"        |     |     |     |",
	"        |  <- |  |  | ->  |",
	"        |     |  v  |     |",
	"        -------------------",
	"       Or W, S, A, D instead",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// Render draws a snapshot: the tile grid on the left, the info panel on the
// right and the score bar on the bottom row.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < core.MinScreenW || dst.Height() < core.MinScreenH {
		renderTooSmall(dst)
		return
	}

	renderGrid(dst)
	renderTiles(dst, s.Board)
	renderPanel(dst, s)
	renderStatus(dst, s)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Please resize to %dx%d", core.MinScreenW, core.MinScreenH))
}

// renderGrid draws the separators between tiles.
func renderGrid(dst *core.Screen) {
	for r := 1; r < engine.Size; r++ {
		dst.DrawHLine(0, r*cellH-1, boardW, '-')
	}

	for c := 1; c <= engine.Size; c++ {
		dst.DrawVLine(c*cellW-1, 0, statusRow, '|')
	}

	for c := 1; c <= engine.Size; c++ {
		for r := 1; r < engine.Size; r++ {
			dst.Set(c*cellW-1, r*cellH-1, '+')
		}
	}
}

// renderTiles paints each tile's background and centers its value.
func renderTiles(dst *core.Screen, b engine.Board) {
	for y := range engine.Size {
		for x := range engine.Size {
			val := b[y][x]
			bg := core.TileColor(val)
			px := x * cellW
			py := y * cellH

			dst.FillRect(core.NewRect(px, py, tileW, tileH), bg)
			if val == 0 {
				continue
			}

			label := strconv.FormatUint(uint64(val), 10)
			pad := max((tileW-len(label))/2, 0)
			dst.DrawStyledText(px+pad, py+tileH/2, label, core.ColorDefault, bg)
		}
	}
}

// panelLine centers text in the info panel.
func panelLine(dst *core.Screen, row int, text string, fg core.Color) {
	x := panelX + max((panelW-len(text))/2, 0)
	dst.DrawStyledText(x, row, text, fg, core.ColorDefault)
}

// renderPanel draws the banner, the session stats and the key hints.
func renderPanel(dst *core.Screen, s Snapshot) {
	switch s.Banner {
	case BannerWin:
		panelLine(dst, 11, "HURRAY!!!", core.ColorBlue)
		panelLine(dst, 12, "You reached 2048!!", core.ColorMagenta)
		panelLine(dst, 13, "Move to continue", core.ColorDefault)
	case BannerLost:
		panelLine(dst, 12, "OH NO!!", core.ColorRed)
		panelLine(dst, 13, "You lose!!!", core.ColorDefault)
	default:
		if s.ShowHelp {
			for i, line := range controlsArt {
				dst.DrawText(panelX, 2+i, line)
			}
		}
		if s.Banner == BannerKeepPlaying {
			panelLine(dst, 14, "2048 reached - keep going!", core.ColorMagenta)
		}
	}

	panelLine(dst, 16, fmt.Sprintf("Moves: %d   Max tile: %d", s.Moves, s.MaxTile), core.ColorGray)
	panelLine(dst, 17, fmt.Sprintf("Best: %d", s.Best), core.ColorGray)

	panelLine(dst, 19, "Press 'r' to retry", core.ColorDefault)
	panelLine(dst, 20, "'q' to quit", core.ColorDefault)
	panelLine(dst, 21, "'h' to toggle help", core.ColorDefault)
}

// renderStatus draws the reverse-video score bar.
func renderStatus(dst *core.Screen, s Snapshot) {
	dst.FillRect(core.NewRect(0, statusRow, core.MinScreenW, 1), core.ColorWhite)

	dst.DrawStyledText(0, statusRow, "-- THE 2048 GAME --", core.ColorBlack, core.ColorWhite)

	label := "YOUR SCORE: "
	dst.DrawStyledText(60-len(label), statusRow, label, core.ColorBlack, core.ColorWhite)

	score := strconv.FormatUint(s.Score, 10)
	dst.DrawStyledText(70-len(score), statusRow, score, core.ColorBlack, core.ColorWhite)
}
