package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/study-breakout/internal/games/breakout"
	"github.com/vovakirdan/study-breakout/internal/platform/tui"
	"github.com/vovakirdan/study-breakout/internal/registry"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the high scores and play statistics of a game.

Examples:
  arcade scores
  arcade scores breakout --limit 20
  arcade scores --recent
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := breakout.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Sessions"
		scores, err = store.RecentScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "End", "When")
	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "---", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-10s  %-5d  %-8s  %s\n",
			i+1, player, humanize.Comma(int64(e.Score)), e.Level, e.Reason, humanize.Time(e.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Println(tui.StatsLine(stats))
	}
	return nil
}
