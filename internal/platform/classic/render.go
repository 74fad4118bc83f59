package classic

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/palette"
)

// Frame encodes the whole screen as cursor-addressed rows. Raw mode turns
// off output post-processing, so rows are positioned explicitly instead of
// being separated by newlines.
func Frame(s *core.Screen, p *palette.Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height()*8)

	for y := range s.Height() {
		sb.WriteString(ansi.CursorPosition(1, y+1))

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	sb.WriteString(ansi.ResetStyle)
	return sb.String()
}
