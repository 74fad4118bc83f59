// Package palette turns core colors into lipgloss styles for both frontends.
package palette

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

// textColors maps the named text colors to ANSI palette entries.
var textColors = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorGray:    lipgloss.Color("245"),
}

type pair struct {
	fg, bg core.Color
}

// Palette caches one lipgloss style per foreground/background pair.
type Palette struct {
	renderer *lipgloss.Renderer
	text     lipgloss.Color
	tiles    map[core.Color]lipgloss.Color
	styles   map[pair]lipgloss.Style
}

// New builds a palette from the configured tile colors. A nil renderer uses
// lipgloss' default, which writes to stdout.
func New(cfg config.Config, r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := &Palette{
		renderer: r,
		text:     lipgloss.Color(cfg.TextColor),
		tiles:    make(map[core.Color]lipgloss.Color),
		styles:   make(map[pair]lipgloss.Style),
	}
	for v := uint32(2); v <= 4096; v *= 2 {
		if hex := cfg.TileBackground(v); hex != "" {
			p.tiles[core.TileColor(v)] = lipgloss.Color(hex)
		}
	}
	return p
}

// Style returns the style for a cell drawn with fg on bg.
func (p *Palette) Style(fg, bg core.Color) lipgloss.Style {
	key := pair{fg, bg}
	if s, ok := p.styles[key]; ok {
		return s
	}

	s := p.renderer.NewStyle()
	if c, ok := p.background(bg); ok {
		s = s.Background(c)
		// Numbers on tiles use the configured text color unless told otherwise.
		if fg == core.ColorDefault && bg.TileValue() != 0 {
			s = s.Foreground(p.text).Bold(true)
		}
	}
	if c, ok := textColors[fg]; ok {
		s = s.Foreground(c)
	}

	p.styles[key] = s
	return s
}

func (p *Palette) background(bg core.Color) (lipgloss.Color, bool) {
	if c, ok := p.tiles[bg]; ok {
		return c, true
	}
	c, ok := textColors[bg]
	return c, ok
}
