package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Frontend != def.Frontend || cfg.TextColor != def.TextColor || cfg.DBPath != def.DBPath {
		t.Errorf("embedded config %+v differs from Default() %+v", cfg, def)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Fatalf("palette has %d entries, expected %d", len(cfg.Palette), len(def.Palette))
	}
	for v, hex := range def.Palette {
		if cfg.Palette[v] != hex {
			t.Errorf("palette[%d] = %q, expected %q", v, cfg.Palette[v], hex)
		}
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)

	writeFile(t, filepath.Join(cwd, "configs", "term2048.yaml"), "frontend: classic\ntext_color: \"#111111\"\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextColor != "#111111" {
		t.Errorf("local config not used, text_color = %q", cfg.TextColor)
	}

	writeFile(t, filepath.Join(home, ".term2048", "config.yaml"), "text_color: \"#222222\"\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextColor != "#222222" {
		t.Errorf("user config should win over local, text_color = %q", cfg.TextColor)
	}
	if cfg.Frontend != FrontendTUI {
		t.Errorf("missing field should keep its default, frontend = %q", cfg.Frontend)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "text_color: \"#333333\"\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextColor != "#333333" || cfg.Source != custom {
		t.Errorf("custom path should win, text_color = %q source = %q", cfg.TextColor, cfg.Source)
	}
}

func TestLoadSkipsBrokenImplicitFiles(t *testing.T) {
	home, cwd := isolate(t)
	userPath := filepath.Join(home, ".term2048", "config.yaml")
	writeFile(t, userPath, "frontend: [not, a, string\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("broken user config should be skipped, got %v", err)
	}
	if cfg.Frontend != FrontendTUI || cfg.Source != SourceEmbedded {
		t.Errorf("frontend = %q source = %q, expected embedded default", cfg.Frontend, cfg.Source)
	}
	if len(cfg.Skipped) != 1 || !strings.Contains(cfg.Skipped[0].Error(), userPath) {
		t.Fatalf("skipped = %v, expected the user config", cfg.Skipped)
	}

	localPath := filepath.Join(cwd, "configs", "term2048.yaml")
	writeFile(t, localPath, "frontend: classic\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frontend != FrontendClassic || cfg.Source != localFilePath {
		t.Errorf("frontend = %q source = %q, expected the local config", cfg.Frontend, cfg.Source)
	}
	if len(cfg.Skipped) != 1 || !strings.Contains(cfg.Skipped[0].Error(), "parse") {
		t.Errorf("skipped = %v, expected the broken user config", cfg.Skipped)
	}
}

func TestLoadMissingImplicitFilesAreNotReported(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Skipped) != 0 {
		t.Errorf("skipped = %v, expected none", cfg.Skipped)
	}
}

func TestDefaultYAMLIsValid(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !strings.Contains(string(DefaultYAML()), "palette:") {
		t.Error("embedded default should spell out the palette")
	}
	if cfg.Frontend != FrontendTUI {
		t.Errorf("frontend = %q", cfg.Frontend)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string // empty means the file is not created
		wantErr string
	}{
		{"missing", "", "read"},
		{"bad yaml", "palette: [1, 2\n", "parse"},
		{"bad frontend", "frontend: gui\n", "unknown frontend"},
		{"bad color", "palette:\n  2: red\n", "#RRGGBB"},
		{"bad tile", "palette:\n  3: \"#FFFFFF\"\n", "not a tile value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestPaletteIsReplacedNotMerged(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "p.yaml")
	writeFile(t, path, "palette:\n  2: \"#abcdef\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Palette) != 1 {
		t.Errorf("palette has %d entries, expected 1", len(cfg.Palette))
	}
	if got := cfg.TileBackground(2); got != "#ABCDEF" {
		t.Errorf("TileBackground(2) = %q", got)
	}
	if got := cfg.TileBackground(4); got != "" {
		t.Errorf("TileBackground(4) = %q, expected none", got)
	}
}

func TestResolveDBPath(t *testing.T) {
	home, _ := isolate(t)

	if got, want := Default().ResolveDBPath(), filepath.Join(home, ".term2048", "scores.db"); got != want {
		t.Errorf("ResolveDBPath() = %q, expected %q", got, want)
	}

	cfg := Default()
	cfg.DBPath = "/tmp/x.db"
	if got := cfg.ResolveDBPath(); got != "/tmp/x.db" {
		t.Errorf("ResolveDBPath() = %q, expected the configured path", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "TERM2048_DB=/from/dotenv.db\nTERM2048_LOG_LEVEL=debug\n")

	t.Setenv(EnvDB, "")
	os.Unsetenv(EnvDB)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvConfig, "")

	if err := LoadEnv(envFile); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := Getenv(EnvDB, "x"); got != "/from/dotenv.db" {
		t.Errorf("%s = %q", EnvDB, got)
	}
	if got := Getenv(EnvLogLevel, "x"); got != "warn" {
		t.Errorf("process environment should win over .env, got %q", got)
	}
	if got := Getenv(EnvConfig, "fallback"); got != "fallback" {
		t.Errorf("unset variable should use the default, got %q", got)
	}

	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
