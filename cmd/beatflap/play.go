package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beatflap/internal/config"
	"github.com/vovakirdan/beatflap/internal/core"
	"github.com/vovakirdan/beatflap/internal/games/flappy"
	"github.com/vovakirdan/beatflap/internal/platform/tui"
	"github.com/vovakirdan/beatflap/internal/registry"
	"github.com/vovakirdan/beatflap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMetronome  int
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. The mode defaults to beatflap.

Modes:
  beatflap       - Obstacles follow the beats you clap (or the metronome)
  beatflap_demo  - Every obstacle you pass counts as a beat

Controls:
  Space/Enter  - Start
  Space/Up     - Flap
  C/Enter      - Clap the beat (also flaps)
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider gaps, sparser obstacles
  normal - Reference tuning
  hard   - Narrower gaps, denser obstacles

Examples:
  beatflap play
  beatflap play --metronome 150
  beatflap play beatflap_demo --difficulty hard
  beatflap play --config ./my-flappy.yaml --log-file ./beatflap.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagMetronome, "metronome", 0, "Feed a steady beat at this BPM (0 = off)")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on flaps, points and game over")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "beatflap"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'beatflap list' to see available modes.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagMetronome < 0 {
		fmt.Fprintln(os.Stderr, "Error: --metronome must not be negative")
		os.Exit(1)
	}

	// An explicit config must load; implicit ones fall back to defaults
	if flagConfig != "" {
		if _, err := config.LoadFlappy(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path and difficulty before the game is created
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cmd.Context(), game, store, cfg, tui.Options{
		Logger:       logger,
		Bell:         flagBell,
		MetronomeBPM: flagMetronome,
	})

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	//nolint:errcheck // Best-effort flush
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
