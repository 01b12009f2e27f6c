package config

import (
	_ "embed"
)

//go:embed defaults/gridpad.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used if even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Height: 14,
		},
		Paths: PathsConfig{
			StateFile:   "~/.gridpad/state.json",
			Database:    "~/.gridpad/snapshots.db",
			PatternsDir: "~/.gridpad/patterns",
		},
		Theme: ThemeConfig{
			OnGlyph:  "■",
			OffGlyph: "□",
			OnColor:  "10",
			OffColor: "245",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config init` style
// tooling and tests.
func DefaultYAML() []byte {
	return defaultYAML
}
