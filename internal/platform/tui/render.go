package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridpad/internal/config"
	"github.com/vovakirdan/gridpad/internal/grid"
)

// Grid strip layout. Each cell occupies cellWidth terminal columns
// starting at gridLeft on row gridTop; CellIndexAt relies on these.
const (
	gridTop   = 2
	gridLeft  = 2
	cellWidth = 2
)

// Theme holds the resolved cell styles and glyphs.
type Theme struct {
	OnGlyph  string
	OffGlyph string
	OnStyle  lipgloss.Style
	OffStyle lipgloss.Style
	Title    lipgloss.Style
	Status   lipgloss.Style
	ErrStyle lipgloss.Style
}

// NewTheme builds a Theme from configuration, falling back to defaults
// for missing glyphs or colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	def := config.Default().Theme
	if cfg.OnGlyph == "" {
		cfg.OnGlyph = def.OnGlyph
	}
	if cfg.OffGlyph == "" {
		cfg.OffGlyph = def.OffGlyph
	}
	if cfg.OnColor == "" {
		cfg.OnColor = def.OnColor
	}
	if cfg.OffColor == "" {
		cfg.OffColor = def.OffColor
	}

	return Theme{
		OnGlyph:  cfg.OnGlyph,
		OffGlyph: cfg.OffGlyph,
		OnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.OnColor)),
		OffStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.OffColor)),
		Title:    lipgloss.NewStyle().Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ErrStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// renderStrip draws the cell strip with the cursor highlighted.
func renderStrip(g *grid.Grid, cursor int, th Theme) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", gridLeft))

	for i, c := range g.State() {
		glyph := th.OffGlyph
		style := th.OffStyle
		if c == grid.On {
			glyph = th.OnGlyph
			style = th.OnStyle
		}
		if i == cursor {
			style = style.Reverse(true)
		}
		sb.WriteString(style.Render(glyph))
		sb.WriteString(" ")
	}
	return sb.String()
}

// MinWidth returns the terminal width needed to show the whole strip.
func MinWidth(height int) int {
	return gridLeft + height*cellWidth
}

// CellIndexAt resolves a terminal coordinate to a cell index, or -1 if
// the position is outside the strip. This is the mapping from a raw
// pointer interaction to an index; the grid itself only ever sees the
// resulting index.
func CellIndexAt(x, y, height int) int {
	if y != gridTop {
		return -1
	}
	if x < gridLeft {
		return -1
	}
	index := (x - gridLeft) / cellWidth
	if index >= height {
		return -1
	}
	return index
}
