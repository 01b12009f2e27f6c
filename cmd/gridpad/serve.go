package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpad/internal/config"
	"github.com/vovakirdan/gridpad/internal/grid"
	"github.com/vovakirdan/gridpad/internal/patterns"
	"github.com/vovakirdan/gridpad/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridpad SSH server",
	Long: `Start an SSH server that gives each connection its own grid editor.

Sessions are independent: every connection gets a private grid, and
saved states go to the shared snapshot history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridpad/host_key

Examples:
  gridpad serve                           # Listen on :23235 with auto-generated key
  gridpad serve --ssh :2222               # Listen on port 2222
  gridpad serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.DBPath = cfg.Paths.Database
	srvCfg.Theme = cfg.Theme
	if cfg.Grid.Height > 0 {
		srvCfg.Height = cfg.Grid.Height
	}
	if cfg.SSH.Address != "" {
		srvCfg.Address = cfg.SSH.Address
	}
	if cfg.SSH.HostKeyPath != "" {
		srvCfg.HostKeyPath = cfg.SSH.HostKeyPath
	}
	if cfg.SSH.IdleMinutes > 0 {
		srvCfg.IdleTimeout = time.Duration(cfg.SSH.IdleMinutes) * time.Minute
	}

	// Flags win over config
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if srvCfg.Height <= 0 {
		srvCfg.Height = grid.DefaultHeight
	}

	loader := patterns.NewLoader(config.ExpandPath(cfg.Paths.PatternsDir))
	if all, perr := loader.LoadAll(); perr == nil {
		srvCfg.Patterns = all
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gridpad SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
