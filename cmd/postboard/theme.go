package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitor14i/postboard/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Get or set the theme",
	Long: `Get or set the persisted theme preference.

Without arguments, prints the active theme. With "light" or "dark",
sets it; with "toggle", flips it.

Examples:
  postboard theme
  postboard theme dark
  postboard theme toggle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(themes.Active())
		return nil
	}

	switch args[0] {
	case "toggle":
		next, err := themes.Toggle()
		if err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", next)

	case string(theme.Light), string(theme.Dark):
		t := theme.Theme(args[0])
		if err := themes.Set(t); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", t)

	default:
		return fmt.Errorf("unknown theme: %s (use light, dark or toggle)", args[0])
	}

	return nil
}
