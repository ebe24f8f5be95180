package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/study-breakout/internal/registry"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered games",
	Long:  `Shows every registered game with its best score and play count.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	// Stats are optional: a missing database still lists the games
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTitle\tBest\tPlays\tLast played")
	fmt.Fprintln(w, "  --\t-----\t----\t-----\t-----------")
	for _, g := range games {
		best, plays, last := "-", "0", "never"
		if st, ok := stats[g.ID]; ok && st.GamesCount > 0 {
			best = humanize.Comma(int64(st.HighScore))
			plays = humanize.Comma(int64(st.GamesCount))
			last = humanize.Time(st.LastPlayed)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", g.ID, g.Title, best, plays, last)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play.")
	return nil
}
