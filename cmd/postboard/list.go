package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listOpts struct {
	format string
	limit  int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts newest first",
	Long: `List the posts on the board, newest first.

Examples:
  # Plain listing
  postboard list

  # Only the five newest posts
  postboard list --limit 5

  # Machine-readable output
  postboard list --format json
  postboard list --format yaml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
	listCmd.Flags().IntVarP(&listOpts.limit, "limit", "n", 0,
		"Maximum number of posts to show (0=unlimited)")
}

func runList(cmd *cobra.Command, args []string) error {
	posts := postBoard.Newest()
	if listOpts.limit > 0 && len(posts) > listOpts.limit {
		posts = posts[:listOpts.limit]
	}

	switch listOpts.format {
	case "json":
		data, err := json.MarshalIndent(posts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(posts)
		if err != nil {
			return err
		}
		fmt.Print(string(data))

	case "plain":
		if len(posts) == 0 {
			fmt.Println("No posts yet. Be the first to share!")
			return nil
		}
		for i, p := range posts {
			fmt.Printf("%d. %s  (♥ %d, %s)\n", i+1, p.Title, p.Likes, p.RelativeTime())
			fmt.Printf("   %s\n", p.BodyTruncated(72))
		}

	default:
		return fmt.Errorf("unknown format: %s", listOpts.format)
	}

	return nil
}
