// Package config provides YAML-based application configuration for the
// gridpad tool.
package config

// Config holds all tunable settings for gridpad.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Paths PathsConfig `yaml:"paths"`
	Theme ThemeConfig `yaml:"theme"`
	SSH   SSHConfig   `yaml:"ssh"`
}

// GridConfig defines grid construction defaults.
type GridConfig struct {
	Height int `yaml:"height"` // Default cell count for new grids
}

// PathsConfig defines filesystem locations.
type PathsConfig struct {
	StateFile   string `yaml:"state_file"`   // Default save/load target
	Database    string `yaml:"database"`     // Snapshot history database
	PatternsDir string `yaml:"patterns_dir"` // Extra pattern files
}

// ThemeConfig defines how cells are drawn by the TUI.
type ThemeConfig struct {
	OnGlyph  string `yaml:"on_glyph"`
	OffGlyph string `yaml:"off_glyph"`
	OnColor  string `yaml:"on_color"`  // ANSI color code
	OffColor string `yaml:"off_color"` // ANSI color code
}

// SSHConfig defines the SSH server settings.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}
