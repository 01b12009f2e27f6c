package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader discovers pattern files under a root directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads every pattern file under Root,
// then appends the built-ins for any ID not already present. Results
// are sorted by ID for deterministic ordering. Invalid files are
// skipped rather than failing the whole scan.
func (l *Loader) LoadAll() ([]Pattern, error) {
	var out []Pattern
	seen := make(map[string]bool)

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}
			p, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			if !seen[p.ID] {
				seen[p.ID] = true
				out = append(out, p)
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	for _, p := range Builtins() {
		if !seen[p.ID] {
			seen[p.ID] = true
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single pattern file.
func (l *Loader) LoadFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	p, err := ParseYAML(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// LoadByID loads a specific pattern by ID.
func (l *Loader) LoadByID(id string) (Pattern, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Pattern{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("pattern not found: %s", id)
}
