// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play
//	snake controls           - Show key bindings
//
// Flags (all optional):
//
//	--seed <value>      - RNG seed for a reproducible first session (0 = time based)
//	--config <path>     - Tuning YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--log-file <path>   - Write logs to a file; logs are discarded otherwise
//	--debug             - Log at debug level
//
// Exit status is 0 after quitting from the end screen and 1 after Ctrl+Q/Ctrl+C
// or a fatal terminal error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/loop"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, loop.ErrHardQuit) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Guide the snake to the food and grow it to 10 segments to win.

Bombs (O) show up at random and vanish after a while; running into one
costs a segment, or the game if only the head is left. Walls and your own
body end the game.

Controls:
  Arrows        - Steer
  r             - Restart (end screen)
  Esc           - Quit (end screen)
  Ctrl+Q/Ctrl+C - Abort`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(controlsCmd)
}
