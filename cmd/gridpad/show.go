package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpad/internal/grid"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a saved grid file",
	Long: `Load a grid state file and print its contents to stdout.

The grid is sized to whatever the file holds, so any valid state file
can be inspected regardless of the configured height.

Examples:
  gridpad show ./work.json
  gridpad show ~/.gridpad/state.json`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	path := args[0]

	g, err := grid.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d cells, %d on\n", path, g.Height(), g.CountOn())
	fmt.Println()
	fmt.Printf("  %s\n", g.String())
	fmt.Println()

	for i, c := range g.State() {
		fmt.Printf("  %-4d %s\n", i, c)
	}
}
