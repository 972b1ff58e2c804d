package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uberjump/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels that can be played, with their finish height and
number of objects. Files that fail to parse are skipped.`,
	Run: exitCode(runLevels),
}

func runLevels(_ []string) int {
	lvls, err := levels.NewLoader(levelSource()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		return 1
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return 0
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %6s  %7s\n", maxIDLen, "ID", maxNameLen, "Name", "Height", "Objects")
	fmt.Printf("  %-*s  %-*s  %6s  %7s\n", maxIDLen, "--", maxNameLen, "----", "------", "-------")

	for _, l := range lvls {
		fmt.Printf("  %-*s  %-*s  %6d  %7d\n", maxIDLen, l.ID, maxNameLen, l.Name, l.EndY, l.ObjectCount())
	}

	fmt.Println()
	fmt.Println("Run 'uberjump play <id>' to play a level.")
	return 0
}
