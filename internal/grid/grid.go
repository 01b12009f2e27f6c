// Package grid provides the toggle-grid state model: a fixed-length
// sequence of binary cells with toggle, bulk-set and file persistence.
// This package is UI-agnostic; rendering layers consume State() and
// call Toggle() and never the other way around.
package grid

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell int

const (
	Off Cell = 0
	On  Cell = 1
)

// Valid reports whether the cell holds one of the two allowed values.
func (c Cell) Valid() bool {
	return c == Off || c == On
}

// Flip returns the opposite cell state.
func (c Cell) Flip() Cell {
	if c == Off {
		return On
	}
	return Off
}

// String returns "on" or "off".
func (c Cell) String() string {
	if c == On {
		return "on"
	}
	return "off"
}

// DefaultHeight is the cell count used when no height is given.
const DefaultHeight = 14

// Grid is a fixed-length sequence of binary cells. The length is set at
// construction and never changes; every mutator validates before it
// touches state, so a failed call leaves the grid exactly as it was.
// A Grid is not safe for concurrent use; each instance belongs to a
// single owner.
type Grid struct {
	cells []Cell
}

// New creates a grid of the given height with all cells Off.
// A negative height is rejected with ErrInvalidArgument.
func New(height int) (*Grid, error) {
	if height < 0 {
		return nil, &Error{
			Kind:    KindInvalidArgument,
			Message: fmt.Sprintf("negative height %d", height),
		}
	}
	return &Grid{cells: make([]Cell, height)}, nil
}

// NewDefault creates a grid with DefaultHeight cells.
func NewDefault() *Grid {
	g, _ := New(DefaultHeight)
	return g
}

// Height returns the number of cells.
func (g *Grid) Height() int {
	return len(g.cells)
}

// InBounds reports whether index addresses a cell.
func (g *Grid) InBounds(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// Get returns the cell at index.
// An out-of-range index is rejected with ErrIndexOutOfRange.
func (g *Grid) Get(index int) (Cell, error) {
	if !g.InBounds(index) {
		return Off, indexError(index, len(g.cells))
	}
	return g.cells[index], nil
}

// Toggle flips the cell at index. Exactly one cell changes on success;
// an out-of-range index is rejected with ErrIndexOutOfRange and the
// grid is left untouched.
func (g *Grid) Toggle(index int) error {
	if !g.InBounds(index) {
		return indexError(index, len(g.cells))
	}
	g.cells[index] = g.cells[index].Flip()
	return nil
}

// State returns an independent copy of the cell sequence. Mutating the
// returned slice never affects the grid.
func (g *Grid) State() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// SetState replaces the whole cell sequence. The replacement is atomic:
// on any validation failure (ErrSizeMismatch for a length difference,
// ErrInvalidValue for a value outside {0,1}) the grid keeps its prior
// state. The input slice is copied, never aliased.
func (g *Grid) SetState(cells []Cell) error {
	if err := g.validate(cells); err != nil {
		return err
	}
	copy(g.cells, cells)
	return nil
}

// validate checks a candidate cell sequence against the grid without
// modifying anything.
func (g *Grid) validate(cells []Cell) error {
	if len(cells) != len(g.cells) {
		return &Error{
			Kind: KindSizeMismatch,
			Message: fmt.Sprintf("state length %d does not match grid height %d",
				len(cells), len(g.cells)),
		}
	}
	for i, c := range cells {
		if !c.Valid() {
			return &Error{
				Kind:    KindInvalidValue,
				Message: fmt.Sprintf("invalid cell value %d at index %d", int(c), i),
			}
		}
	}
	return nil
}

// Clear sets every cell to Off.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Off
	}
}

// CountOn returns the number of cells currently On.
func (g *Grid) CountOn() int {
	n := 0
	for _, c := range g.cells {
		if c == On {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same height and contents.
func (g *Grid) Equal(other *Grid) bool {
	if len(g.cells) != len(other.cells) {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells}
}

// String returns a compact textual form like "#.#.#", one character per
// cell ('#' for On, '.' for Off). Used by logs and the show command.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells))
	for _, c := range g.cells {
		if c == On {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
