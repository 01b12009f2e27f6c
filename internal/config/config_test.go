package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
grid:
  height: 20
paths:
  state_file: /tmp/grid.json
theme:
  on_glyph: "X"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Height != 20 {
		t.Errorf("expected height 20, got %d", cfg.Grid.Height)
	}
	if cfg.Paths.StateFile != "/tmp/grid.json" {
		t.Errorf("unexpected state file: %s", cfg.Paths.StateFile)
	}
	if cfg.Theme.OnGlyph != "X" {
		t.Errorf("unexpected on glyph: %s", cfg.Theme.OnGlyph)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("grid: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	want := Default()
	if cfg.Grid.Height != want.Grid.Height {
		t.Errorf("height: embedded %d, hardcoded %d", cfg.Grid.Height, want.Grid.Height)
	}
	if cfg.Paths.Database != want.Paths.Database {
		t.Errorf("database: embedded %s, hardcoded %s", cfg.Paths.Database, want.Paths.Database)
	}
	if cfg.SSH.Address != want.SSH.Address {
		t.Errorf("ssh address: embedded %s, hardcoded %s", cfg.SSH.Address, want.SSH.Address)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	expanded := ExpandPath("~/x/y.json")
	if !strings.HasPrefix(expanded, home) {
		t.Errorf("expected %q to start with %q", expanded, home)
	}

	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty path should be unchanged, got %q", got)
	}
}
