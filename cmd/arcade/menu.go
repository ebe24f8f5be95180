package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/games/breakout"
	"github.com/vovakirdan/study-breakout/internal/platform/tui"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty and high scores",
	Long: `Start the arcade in interactive menu mode.

Pick a difficulty, play, and come back to the menu when you quit a game.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkGameOptions(flagConfig, ""); err != nil {
		return err
	}
	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	breakout.SetConfigPath(flagConfig)

	cfg := terminalConfig()
	difficulty := config.DifficultyNormal

	for {
		result, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, currentUser(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			flagDifficulty = string(difficulty)
			breakout.SetDifficultyPreset(flagDifficulty)

			// A fresh seed per game unless one was given
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := playOnce(breakout.GameID, store, cfg, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			return nil
		}
	}
}
