// Package patterns provides named preset toggle patterns loadable into
// a grid. Patterns come from YAML files in a directory, with a set of
// embedded built-ins as the fallback. This package depends on grid but
// grid does not depend on patterns.
package patterns

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridpad/internal/grid"
)

// Pattern is a named preset: a grid height and the indices that are on.
type Pattern struct {
	ID       string
	Name     string
	Height   int
	On       []int
	FilePath string // Empty for built-ins
}

// yamlPattern is the on-disk YAML structure for a pattern file.
type yamlPattern struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Height int    `yaml:"height"`
	On     []int  `yaml:"on"`
}

// ParseYAML parses a YAML pattern file.
func ParseYAML(data []byte) (Pattern, error) {
	var yp yamlPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Pattern{}, fmt.Errorf("pattern has no id")
	}
	if yp.Height <= 0 {
		return Pattern{}, fmt.Errorf("pattern %s has non-positive height %d", yp.ID, yp.Height)
	}
	for _, idx := range yp.On {
		if idx < 0 || idx >= yp.Height {
			return Pattern{}, fmt.Errorf("pattern %s: index %d out of range for height %d",
				yp.ID, idx, yp.Height)
		}
	}
	return Pattern{
		ID:     yp.ID,
		Name:   yp.Name,
		Height: yp.Height,
		On:     yp.On,
	}, nil
}

// Cells expands the pattern into a full cell sequence.
func (p *Pattern) Cells() []grid.Cell {
	cells := make([]grid.Cell, p.Height)
	for _, idx := range p.On {
		if idx >= 0 && idx < p.Height {
			cells[idx] = grid.On
		}
	}
	return cells
}

// Apply replaces the grid's state with the pattern. It goes through
// SetState, so a height mismatch fails atomically with the grid's own
// SizeMismatch error.
func (p *Pattern) Apply(g *grid.Grid) error {
	return g.SetState(p.Cells())
}

// ToGrid constructs a fresh grid holding the pattern.
func (p *Pattern) ToGrid() (*grid.Grid, error) {
	g, err := grid.New(p.Height)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}
