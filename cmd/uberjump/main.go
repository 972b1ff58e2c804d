// uberjump is a vertical platformer for the terminal: launch upward, bounce
// off platforms, grab stars and climb as high as the level goes.
//
// Usage:
//
//	uberjump play [level]     - Play a level (default: level01)
//	uberjump menu             - Pick levels interactively
//	uberjump levels           - List available levels
//	uberjump scores [level]   - Show progress and best runs
//	uberjump serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.uberjump/progress.db)
//	--config <path>   - Load tunables from a YAML file
//	--levels <dir>    - Load levels from a directory instead of the built-in set
//	--log-file <path> - Write logs here while the terminal UI is running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogFile   string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitCode adapts a command body that returns a process exit code. The body
// returns before the process exits, so its deferred cleanup runs.
func exitCode(run func(args []string) int) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		if code := run(args); code != 0 {
			os.Exit(code)
		}
	}
}

var rootCmd = &cobra.Command{
	Use:   "uberjump",
	Short: "UberJump - a vertical platformer in your terminal",
	Long: `UberJump launches you upward through a level of platforms and stars.
Land on platforms to bounce, grab stars for a boost, and climb past the
finish line. Fall too far and the run is over.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show all available levels
  scores   - View progress and best runs
  serve    - Start SSH server for remote play

Examples:
  uberjump play
  uberjump play level02
  uberjump menu --levels ./my-levels
  uberjump serve --ssh :2222
  uberjump scores level01`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.uberjump/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.uberjump/uberjump.log", "Log file used while the terminal UI runs")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
