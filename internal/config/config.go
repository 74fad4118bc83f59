// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Frontend selects how the game is drawn.
type Frontend string

const (
	FrontendTUI     Frontend = "tui"     // Bubble Tea, with menu and scoreboard
	FrontendClassic Frontend = "classic" // raw terminal, cursor addressing
)

// Config contains all user-tunable settings.
type Config struct {
	Frontend  Frontend          `yaml:"frontend"`
	DBPath    string            `yaml:"db_path"`
	TextColor string            `yaml:"text_color"`
	Palette   map[uint32]string `yaml:"palette"` // tile value -> background hex
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the frontend name and every color.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendClassic:
	default:
		return fmt.Errorf("config: unknown frontend %q (want %q or %q)", c.Frontend, FrontendTUI, FrontendClassic)
	}

	if !hexColor.MatchString(c.TextColor) {
		return fmt.Errorf("config: text_color %q is not a #RRGGBB color", c.TextColor)
	}

	for v, hex := range c.Palette {
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("config: palette key %d is not a tile value", v)
		}
		if !hexColor.MatchString(hex) {
			return fmt.Errorf("config: palette[%d] = %q is not a #RRGGBB color", v, hex)
		}
	}
	return nil
}

// TileBackground returns the configured background for a tile value,
// or "" when the value has none.
func (c Config) TileBackground(value uint32) string {
	return strings.ToUpper(c.Palette[value])
}
