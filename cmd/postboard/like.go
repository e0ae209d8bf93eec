package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vitor14i/postboard/internal/board"
)

var likeCmd = &cobra.Command{
	Use:   "like <position>",
	Short: "Like a post",
	Long: `Add a like to the post at the given position (1-based, newest
first, matching the output of "postboard list").

Examples:
  # Like the newest post
  postboard like 1`,
	Args: cobra.ExactArgs(1),
	RunE: runLike,
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <position>",
	Short: "Remove a like from a post",
	Long: `Remove one like from the post at the given position (1-based,
newest first). A post with no likes is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnlike,
}

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(unlikeCmd)
}

// resolvePosition parses a 1-based display position and resolves it to
// a post ID against the current collection.
func resolvePosition(arg string) (string, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("invalid position: %s", arg)
	}

	id, err := postBoard.ResolveIndex(position)
	if err != nil {
		return "", fmt.Errorf("no post at position %d", position)
	}
	return id, nil
}

func runLike(cmd *cobra.Command, args []string) error {
	id, err := resolvePosition(args[0])
	if err != nil {
		return err
	}

	if err := postBoard.Like(id); err != nil {
		return err
	}

	p := postBoard.Get(id)
	fmt.Printf("Liked %q (♥ %d)\n", p.Title, p.Likes)
	return nil
}

func runUnlike(cmd *cobra.Command, args []string) error {
	id, err := resolvePosition(args[0])
	if err != nil {
		return err
	}

	err = postBoard.Unlike(id)
	if errors.Is(err, board.ErrNoLikes) {
		fmt.Println("No likes to remove!")
		return nil
	}
	if err != nil {
		return err
	}

	p := postBoard.Get(id)
	fmt.Printf("Like removed from %q (♥ %d)\n", p.Title, p.Likes)
	return nil
}
