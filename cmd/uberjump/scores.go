package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/platform/tui"
	"github.com/vovakirdan/uberjump/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show progress and best runs",
	Long: `Display the overall high score and star count, and the top 10 runs
for a level (level01 when none is given).

Examples:
  uberjump scores
  uberjump scores level02
  uberjump scores --browse
  uberjump scores level01 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  exitCode(runScores),
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Browse all levels interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the level")
}

func runScores(args []string) int {
	levelID := levels.DefaultLevelID
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		return 1
	}
	defer store.Close()

	if flagBrowse {
		return browseScores(store)
	}

	if flagClear {
		if err := store.ClearScores(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return 1
		}
		fmt.Printf("Cleared run history for %s.\n", levelID)
		return 0
	}

	title := levelID
	if lvl, err := levels.NewLoader(levelSource()).LoadByID(levelID); err == nil {
		title = lvl.Name
	}

	rec, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		return 1
	}

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return 1
	}

	fmt.Printf("High score: %d    Stars: %d\n", rec.HighScore, rec.Stars)
	fmt.Println()
	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'uberjump play %s' to set the first score!\n", levelID)
		return 0
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
	return 0
}

// browseScores opens the interactive scoreboard over every level.
func browseScores(store *storage.Store) int {
	lvls, err := levels.NewLoader(levelSource()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		return 1
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	if _, err := tui.RunScoreboard(lvls, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
