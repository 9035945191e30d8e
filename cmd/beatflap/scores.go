package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatflap/internal/registry"
	"github.com/vovakirdan/beatflap/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best scores",
	Long: `Display the best score of every mode, or of one mode.

Examples:
  beatflap scores
  beatflap scores beatflap_demo
  beatflap scores beatflap --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Forget the stored best score")
}

func runScores(cmd *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'beatflap list' to see available modes.")
			os.Exit(1)
		}
	}
	if flagResetScores && gameID == "" {
		fmt.Fprintln(os.Stderr, "Error: --reset needs a mode")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.ClearBestScore(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Best score for %s cleared.\n", gameID)
		return
	}

	entries, err := store.AllBestScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	best := make(map[string]storage.BestScore, len(entries))
	for _, e := range entries {
		best[e.GameID] = e
	}

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %s\n", "Mode", "Best", "Set")
	fmt.Printf("  %-16s  %-6s  %s\n", "----", "----", "---")

	for _, g := range registry.List() {
		if gameID != "" && g.ID != gameID {
			continue
		}
		e, ok := best[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %-6s  %s\n", g.ID, "-", "never played")
			continue
		}
		fmt.Printf("  %-16s  %-6d  %s\n", g.ID, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
