package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var removeOpts struct {
	yes bool
}

var removeCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Delete a post",
	Long: `Delete the post at the given position (1-based, newest first).

Asks for confirmation unless --yes is given.

Examples:
  # Delete the newest post, with prompt
  postboard remove 1

  # Delete without asking
  postboard remove 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVarP(&removeOpts.yes, "yes", "y", false,
		"Skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := resolvePosition(args[0])
	if err != nil {
		return err
	}

	p := postBoard.Get(id)
	if p == nil {
		return fmt.Errorf("no post at position %s", args[0])
	}

	if !removeOpts.yes {
		fmt.Printf("Delete %q? [y/N] ", p.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	// The ID keeps naming the same post even if the collection changed
	// while the prompt was open.
	if err := postBoard.Remove(id); err != nil {
		return err
	}

	fmt.Println("Post deleted!")
	return nil
}
