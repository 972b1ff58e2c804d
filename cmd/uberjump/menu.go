package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker",
	Long: `Start UberJump in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level, Tab for scores.
Esc returns to the menu before launch, while paused, or after a run.

Examples:
  uberjump menu
  uberjump menu --levels ./my-levels
  uberjump menu --db ./progress.db`,
	Run: exitCode(runMenu),
}

func runMenu(_ []string) int {
	logger, closeLog := fileLogger()
	defer closeLog()

	tunables, err := loadTunables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lvls, err := levels.NewLoader(levelSource()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		return 1
	}
	if len(lvls) == 0 {
		fmt.Fprintln(os.Stderr, "No levels found.")
		return 1
	}

	store, tracker := openProgress(logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.RunSession(tui.GameDeps{
		Levels:  lvls,
		Config:  tunables,
		Store:   store,
		Tracker: tracker,
		Logger:  logger,
	}, runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
