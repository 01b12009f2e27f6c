package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridpad/internal/config"
	"github.com/vovakirdan/gridpad/internal/grid"
	"github.com/vovakirdan/gridpad/internal/patterns"
	"github.com/vovakirdan/gridpad/internal/platform/tui"
	"github.com/vovakirdan/gridpad/internal/storage"
)

var (
	flagFile    string
	flagHeight  int
	flagPattern string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive grid editor",
	Long: `Open the grid editor in the current terminal.

Controls:
  ←/h, →/l    - Move the cursor
  Space/Enter - Toggle the cell under the cursor
  Mouse click - Toggle the clicked cell
  s           - Save to the state file
  o           - Load from the state file
  c           - Clear all cells
  p/Tab       - Cycle preset patterns
  q/Ctrl+C    - Quit

Examples:
  gridpad edit
  gridpad edit --height 20
  gridpad edit --file ./work.json --pattern alternating`,
	Args: cobra.NoArgs,
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagFile, "file", "", "State file to save/load (overrides config)")
	editCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (overrides config)")
	editCmd.Flags().StringVar(&flagPattern, "pattern", "", "Start from a named pattern")
}

func runEdit(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	height := cfg.Grid.Height
	if flagHeight != 0 {
		height = flagHeight
	}
	if height == 0 {
		height = grid.DefaultHeight
	}

	g, err := grid.New(height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn when the strip will not fit the terminal
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if need := tui.MinWidth(height); w < need {
			fmt.Fprintf(os.Stderr, "Warning: terminal width %d is below the %d columns needed for %d cells\n",
				w, need, height)
		}
	}

	loader := patterns.NewLoader(config.ExpandPath(cfg.Paths.PatternsDir))
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load patterns: %v\n", err)
	}

	if flagPattern != "" {
		p, perr := loader.LoadByID(flagPattern)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			os.Exit(1)
		}
		if aerr := p.Apply(g); aerr != nil {
			fmt.Fprintf(os.Stderr, "Error applying pattern %q: %v\n", flagPattern, aerr)
			os.Exit(1)
		}
	}

	statePath := cfg.Paths.StateFile
	if flagFile != "" {
		statePath = flagFile
	}
	statePath = config.ExpandPath(statePath)

	// Open snapshot storage
	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open snapshots database: %v\n", err)
		// Continue without storage - the editor still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Grid:      g,
		StatePath: statePath,
		Store:     store,
		Patterns:  all,
		Theme:     cfg.Theme,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
