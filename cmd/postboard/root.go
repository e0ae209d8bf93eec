// Package main provides the CLI entrypoint for postboard.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitor14i/postboard/internal/board"
	"github.com/vitor14i/postboard/internal/config"
	"github.com/vitor14i/postboard/internal/storage"
	"github.com/vitor14i/postboard/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		boardFile  string
		configPath string
	}
	logger *slog.Logger

	boardStore *storage.FileStore
	postBoard  *board.Board
	themes     *theme.Manager
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "postboard",
	Short: "A personal post board for your terminal",
	Long: `postboard is a small post board that lives in your terminal.

Write short posts, browse them newest first, like and unlike them, and
delete the ones you regret. Everything is kept in a local board file;
there is no server and no account.

Running postboard without a subcommand launches the interactive TUI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		// Use custom board file path if specified, otherwise use config
		boardPath := globalOpts.boardFile
		if boardPath == "" {
			boardPath = cfg.BoardPath()
		}

		boardStore, err = storage.OpenFileStore(boardPath)
		if err != nil {
			return fmt.Errorf("failed to open board storage: %w", err)
		}

		postBoard, err = board.New(boardStore)
		if err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}

		themes = theme.NewManager(boardStore)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if postBoard != nil {
			postBoard.Close()
		}
		if boardStore != nil {
			return boardStore.Close()
		}
		return nil
	},
	// Default to TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.boardFile, "board-file", "",
		"Path to board file (default: ~/.local/share/postboard/board.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/postboard/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func main() {
	Execute()
}
