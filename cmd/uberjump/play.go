package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uberjump/internal/jump"
	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or level01 when none is given.

Controls:
  Space/Enter  - Launch
  Left/Right   - Steer (A/D and H/L work too)
  P            - Pause
  R            - Restart (after the run ends)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  uberjump play
  uberjump play level02
  uberjump play --levels ./my-levels tower
  uberjump play --config ./floaty.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  exitCode(runPlay),
}

func runPlay(args []string) int {
	levelID := levels.DefaultLevelID
	if len(args) == 1 {
		levelID = args[0]
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	tunables, err := loadTunables()
	if err != nil {
		logger.Error("cannot load tunables", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, err := levels.NewLoader(levelSource()).LoadByID(levelID)
	if err != nil {
		logger.Error("cannot load level", "level", levelID, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading level %q: %v\n", levelID, err)
		if errors.Is(err, levels.ErrMalformedLevel) || errors.Is(err, levels.ErrMissingPattern) {
			fmt.Fprintln(os.Stderr, "Fix the level file and try again.")
		} else {
			fmt.Fprintln(os.Stderr, "Run 'uberjump levels' to see available levels.")
		}
		return 1
	}

	store, tracker := openProgress(logger)
	if store != nil {
		defer store.Close()
	}

	game := jump.New(level, tunables, tracker)
	game.SetLogger(logger)

	if err := tui.Run(game, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}
	return 0
}
