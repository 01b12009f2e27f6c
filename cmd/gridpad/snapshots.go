package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpad/internal/grid"
	"github.com/vovakirdan/gridpad/internal/storage"
)

var (
	flagSnapLimit int
	flagSnapClear string
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Show snapshot history",
	Long: `Display the most recent grid snapshots recorded in the database.

Every save from the editor records a snapshot, so this is a history of
saved states.

Examples:
  gridpad snapshots
  gridpad snapshots -n 50
  gridpad snapshots --clear state`,
	Args: cobra.NoArgs,
	Run:  runSnapshots,
}

func init() {
	snapshotsCmd.Flags().IntVarP(&flagSnapLimit, "limit", "n", 20, "Number of snapshots to show")
	snapshotsCmd.Flags().StringVar(&flagSnapClear, "clear", "", "Delete all snapshots with this name")
}

func runSnapshots(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshots database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSnapClear != "" {
		if err := store.DeleteSnapshots(flagSnapClear); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing snapshots: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared snapshots named %q\n", flagSnapClear)
		return
	}

	entries, err := store.ListSnapshots(flagSnapLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving snapshots: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No snapshots recorded yet.")
		fmt.Println()
		fmt.Println("Save from 'gridpad edit' to record the first one.")
		return
	}

	fmt.Printf("  %-6s  %-12s  %-7s  %-18s  %s\n", "ID", "Name", "Cells", "Created", "State")
	fmt.Printf("  %-6s  %-12s  %-7s  %-18s  %s\n", "--", "----", "-----", "-------", "-----")

	for _, e := range entries {
		strip := make([]byte, len(e.Cells))
		for i, c := range e.Cells {
			if c == grid.On {
				strip[i] = '#'
			} else {
				strip[i] = '.'
			}
		}
		created := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-12s  %-7d  %-18s  %s\n", e.ID, e.Name, e.Height, created, strip)
	}
}
