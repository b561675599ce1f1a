package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels and any loaded with --levels-dir.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	idW := len("ID")
	for _, l := range levels {
		idW = max(idW, len(l.ID))
	}

	fmt.Printf("  %-*s  %s\n", idW, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", idW, "--", "-----")
	for _, l := range levels {
		fmt.Printf("  %-*s  %s\n", idW, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
