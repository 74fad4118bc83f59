package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/term2048.yaml.
func Default() Config {
	return Config{
		Frontend:  FrontendTUI,
		TextColor: "#FFFFFF",
		Palette: map[uint32]string{
			2:    "#86DE84",
			4:    "#67CCFC",
			8:    "#9933FF",
			16:   "#FF9A9A",
			32:   "#FFE399",
			64:   "#A3CD49",
			128:  "#0DA9AF",
			256:  "#6C3899",
			512:  "#EEC5DD",
			1024: "#941818",
			2048: "#000000",
			4096: "#C8C8C8",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
