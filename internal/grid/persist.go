package grid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// stateFile is the persisted representation: a self-describing JSON
// object holding the cell sequence. Height is optional advisory
// metadata; the cell count is authoritative on load, and the field is
// only cross-checked when the file carries it.
type stateFile struct {
	Height *int  `json:"height,omitempty"`
	Cells  []int `json:"cells"`
}

// Save writes the current cell sequence to path as JSON. The write goes
// through a temp file in the target directory followed by a rename, so
// a failed save never leaves a truncated state file behind. Any failure
// is reported as ErrIO.
func (g *Grid) Save(path string) error {
	height := len(g.cells)
	sf := stateFile{
		Height: &height,
		Cells:  make([]int, len(g.cells)),
	}
	for i, c := range g.cells {
		sf.Cells[i] = int(c)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return ioError("encoding state for", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gridpad-*.json")
	if err != nil {
		return ioError("creating temp file in", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return ioError("writing", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioError("closing", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError("renaming temp file to", path, err)
	}
	return nil
}

// Load reads a state file and replaces the grid's cells with its
// contents. Validation follows the same rules as SetState against the
// current grid's height, so load is all-or-nothing: on any failure
// (ErrIO for unreadable files, ErrParse for malformed JSON,
// ErrSizeMismatch / ErrInvalidValue for bad payloads) the grid keeps
// its prior state.
func (g *Grid) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ioError("reading", path, err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return &Error{
			Kind:    KindParse,
			Message: fmt.Sprintf("malformed state file %s", path),
			Err:     err,
		}
	}

	// A height field that disagrees with its own cell count means the
	// file is internally inconsistent. The field is optional; when
	// absent the cell count alone decides, and it is never substituted
	// for the live grid's height.
	if sf.Height != nil && *sf.Height != len(sf.Cells) {
		return &Error{
			Kind: KindSizeMismatch,
			Message: fmt.Sprintf("state file %s declares height %d but holds %d cells",
				path, *sf.Height, len(sf.Cells)),
		}
	}

	cells := make([]Cell, len(sf.Cells))
	for i, v := range sf.Cells {
		cells[i] = Cell(v)
	}
	return g.SetState(cells)
}

// LoadFile constructs a new grid sized to whatever a state file holds.
// Unlike Load there is no pre-existing height to match; the file's cell
// count becomes the grid height. Used by the show command.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("reading", path, err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, &Error{
			Kind:    KindParse,
			Message: fmt.Sprintf("malformed state file %s", path),
			Err:     err,
		}
	}
	if sf.Height != nil && *sf.Height != len(sf.Cells) {
		return nil, &Error{
			Kind: KindSizeMismatch,
			Message: fmt.Sprintf("state file %s declares height %d but holds %d cells",
				path, *sf.Height, len(sf.Cells)),
		}
	}

	g, err := New(len(sf.Cells))
	if err != nil {
		return nil, err
	}
	cells := make([]Cell, len(sf.Cells))
	for i, v := range sf.Cells {
		cells[i] = Cell(v)
	}
	if err := g.SetState(cells); err != nil {
		return nil, err
	}
	return g, nil
}
