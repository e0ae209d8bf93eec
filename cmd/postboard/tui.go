package main

import (
	"github.com/spf13/cobra"

	"github.com/vitor14i/postboard/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive board",
	Long: `Launch the interactive terminal user interface for the post board.

The TUI provides:
  - Scrollable list of posts, newest first
  - Compose form for new posts
  - Like/unlike with a live counter
  - Delete with confirmation
  - Light/dark theme toggle

Key bindings:
  j/k, ↑/↓    Navigate list
  n           Write a new post
  l, +        Like the selected post
  u, -        Remove a like
  d           Delete the selected post (asks first)
  t           Toggle light/dark theme
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Board path for file watching (custom or config default)
	boardPath := globalOpts.boardFile
	if boardPath == "" {
		boardPath = cfg.BoardPath()
	}

	return tui.Run(tui.RunOptions{
		Config:    cfg,
		Board:     postBoard,
		Themes:    themes,
		BoardPath: boardPath,
	})
}
