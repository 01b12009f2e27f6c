package patterns

import (
	"embed"
	"path"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the embedded pattern set, sorted by ID.
// Embedded files that fail to parse are skipped.
func Builtins() []Pattern {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	var out []Pattern
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			continue
		}
		p, err := ParseYAML(data)
		if err != nil {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
