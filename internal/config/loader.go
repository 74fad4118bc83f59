package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirName       = ".term2048"
	userFileName  = "config.yaml"
	localFilePath = "configs/term2048.yaml"
)

// SourceEmbedded is Loaded.Source when no file was used.
const SourceEmbedded = "embedded"

// Loaded is a configuration together with where it came from.
type Loaded struct {
	Config
	Source  string  // file path, or SourceEmbedded
	Skipped []error // implicit files that exist but could not be used
}

// Load reads the configuration.
// Search order: customPath -> ~/.term2048/config.yaml -> ./configs/term2048.yaml -> embedded default.
// Only an explicit customPath turns read or parse failures into errors; the
// other locations are skipped when missing, and reported in Skipped when
// unreadable or broken.
// Fields a file leaves out keep their default values.
func Load(customPath string) (Loaded, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Loaded{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Loaded{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	var skipped []error
	for _, path := range []string{UserPath(), localFilePath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, fmt.Errorf("config: read %s: %w", path, err))
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("config: parse %s: %w", path, err))
			continue
		}
		return Loaded{Config: cfg, Source: path, Skipped: skipped}, nil
	}

	cfg, err := parse(DefaultYAML())
	if err != nil {
		cfg = Default()
	}
	return Loaded{Config: cfg, Source: SourceEmbedded, Skipped: skipped}, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	// Replace rather than merge a palette the file spells out.
	cfg.Palette = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Palette == nil {
		cfg.Palette = Default().Palette
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Dir returns ~/.term2048, or "" if the home directory is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dirName)
}

// UserPath returns the per-user config file path, or "" if home is unavailable.
func UserPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, userFileName)
}

// ResolveDBPath returns the score database location: the configured path, or
// ~/.term2048/scores.db, or ./term2048.db when home is unavailable.
func (c Config) ResolveDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "scores.db")
	}
	return "term2048.db"
}

// LogPath returns where full-screen frontends write their log.
func LogPath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "term2048.log")
	}
	return "term2048.log"
}
