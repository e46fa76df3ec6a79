package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagClearScores bool
	flagShowStats   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 rounds and the best score for a variant
(default: flappy).

Examples:
  flappy scores
  flappy scores flappy_lite
  flappy scores --stats
  flappy scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the score history and best score")
	scoresCmd.Flags().BoolVar(&flagShowStats, "stats", false, "Show aggregate statistics")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := flappy.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown variant %q (run 'flappy list' to see them)", gameID)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.Clear(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	rounds, err := store.TopRounds(gameID, storage.DefaultRoundLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	best, err := store.LoadBest(gameID)
	if err != nil {
		return fmt.Errorf("retrieving best: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Printf("\nPlay 'flappy play %s' to set the first one.\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-8s  %s\n", "#", "Score", "Played")
		for i, r := range rounds {
			fmt.Printf("  %-4d  %-8d  %s\n", i+1, r.Score, r.PlayedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	// The best record survives a pruned history, so take the larger of both
	if best = max(best, stats.Best); best > 0 {
		fmt.Printf("\nBest: %d\n", best)
	}

	if flagShowStats && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Rounds played: %d\n", stats.Rounds)
		fmt.Printf("Average score: %.1f\n", stats.Mean)
		fmt.Printf("Total score:   %d\n", stats.Total)
		fmt.Printf("Last played:   %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
