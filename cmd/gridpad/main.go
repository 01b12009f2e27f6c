// gridpad is an interactive toggle grid for the terminal: a strip of
// binary cells you can flip with the keyboard or mouse, persist to a
// JSON state file, and serve over SSH.
//
// Usage:
//
//	gridpad edit             - Open the interactive editor
//	gridpad show <file>      - Print a saved grid file
//	gridpad snapshots        - Show snapshot history
//	gridpad serve            - Start SSH server for remote editing
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--db <path>      - Set database path (default: ~/.gridpad/snapshots.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpad/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridpad",
	Short: "gridpad - An interactive toggle grid in your terminal",
	Long: `gridpad is a terminal toggle grid: a fixed-length strip of binary
cells you flip by clicking or with the keyboard, saved to a JSON state
file that round-trips losslessly.

Available commands:
  edit       - Open the interactive editor
  show       - Print a saved grid file to stdout
  snapshots  - View snapshot history
  serve      - Start SSH server for remote editing

Examples:
  gridpad edit
  gridpad edit --height 20 --file ./work.json
  gridpad show ./work.json
  gridpad snapshots
  gridpad serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to snapshots database (overrides config)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the app config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	return cfg, nil
}
