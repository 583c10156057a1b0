// pong is a terminal Pong game: move the left paddle with the mouse and
// beat the scripted opponent on the right.
//
// Usage:
//
//	pong                  - Play
//	pong config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Write logs to a file (the terminal is taken by the game)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong against a scripted opponent, played in the terminal.

Move the left paddle with the mouse, or nudge it with the arrow keys.
First one to miss gives the other a point; the score runs until you quit.

Controls:
  Mouse        - Move paddle
  Up/Down/w/s  - Nudge paddle
  ?            - Toggle help
  Q/Esc/Ctrl+C - Quit

Examples:
  pong
  pong --seed 42
  pong --config ./my-pong.yaml --log-file pong.log --debug
  pong config > ~/.pong/pong.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
