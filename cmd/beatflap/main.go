// beatflap is a terminal flappy game whose obstacles arrive on the beat.
//
// Usage:
//
//	beatflap list            - List available game modes
//	beatflap play [mode]     - Play a mode (default: beatflap)
//	beatflap scores          - Show the best score of every mode
//	beatflap config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/beatflap/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatflap",
	Short: "Beatflap - flap through obstacles that arrive on the beat",
	Long: `Beatflap is a terminal Flappy Bird-style game. Instead of a fixed
timer, obstacles spawn at a cadence derived from the beats you clap
(or a metronome), so the faster you clap the denser the course gets.

Available commands:
  list     - Show all game modes
  play     - Play a mode
  scores   - View best scores
  config   - Print the default game config

Examples:
  beatflap play
  beatflap play beatflap_demo
  beatflap play --metronome 140
  beatflap scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
