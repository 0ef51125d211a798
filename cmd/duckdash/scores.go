package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the top 5 for a game",
	Long: `Display the top 5 leaderboard and play statistics for a game
(default: duckdash).

Examples:
  duckdash scores
  duckdash scores duckdash_classic
  duckdash scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the leaderboard and stats for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := config.ProfileDuckDash
	if len(args) > 0 {
		gameID = args[0]
	}

	game, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q; run 'duckdash list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, storage.LeaderboardSize)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Top %d - %s\n", storage.LeaderboardSize, game.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'duckdash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Name, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.0f  Best: %d\n", stats.GamesCount, stats.AvgScore, stats.HighScore)
	}
	return nil
}
