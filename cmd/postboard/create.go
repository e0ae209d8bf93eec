package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitor14i/postboard/internal/model"
)

var createOpts struct {
	title string
	body  string
}

var createCmd = &cobra.Command{
	Use:   "create [title] [body]",
	Short: "Create a new post",
	Long: `Create a new post on the board.

Title and body can be given as positional arguments or flags. Both are
required and must be non-empty after trimming whitespace.

Examples:
  # Positional arguments
  postboard create "Hello" "My first post"

  # Flags
  postboard create --title "Hello" --body "My first post"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createOpts.title, "title", "", "Post title")
	createCmd.Flags().StringVar(&createOpts.body, "body", "", "Post body")
}

func runCreate(cmd *cobra.Command, args []string) error {
	title := createOpts.title
	body := createOpts.body
	if len(args) > 0 && title == "" {
		title = args[0]
	}
	if len(args) > 1 && body == "" {
		body = args[1]
	}

	p, err := postBoard.Create(title, body)
	if errors.Is(err, model.ErrEmptyTitle) || errors.Is(err, model.ErrEmptyBody) {
		return fmt.Errorf("please fill in the title and the body of the post")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Post created: %s (%s)\n", p.Title, p.ID)
	return nil
}
