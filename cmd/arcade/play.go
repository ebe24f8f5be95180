package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
	"github.com/vovakirdan/study-breakout/internal/games/breakout"
	"github.com/vovakirdan/study-breakout/internal/platform/tui"
	"github.com/vovakirdan/study-breakout/internal/registry"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to breakout.

Controls:
  Mouse drag     - Move the paddle (launches the ball)
  Left/Right/A/D - Move the paddle
  Space          - Launch the ball
  F/Up           - Fire lasers (with the laser power-up)
  P/Esc          - Pause
  N/Enter        - Next level (after clearing the wall)
  R              - Restart
  Ctrl+S         - Save a screenshot
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - 3 lives (default)
  hard   - 2 lives, narrow paddle, fast ball
  fixed  - Ball speed does not increase between levels

Examples:
  arcade play
  arcade play breakout --difficulty easy
  arcade play --seed 42 --log ./breakout.log
  arcade play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := breakout.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := checkGameOptions(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	return playOnce(gameID, store, terminalConfig(), logger)
}

// playOnce runs one game until the player quits.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	var reporter core.CompletionReporter
	if store != nil {
		reporter = storage.NewRecorder(store, currentUser(), logger)
	}

	logger.Info("game started", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	runErr := tui.Run(game, reporter, cfg, logger)

	// Covers programs stopped without the quit key
	if c, ok := game.(registry.Closer); ok {
		c.Close()
	}
	logger.Info("game ended", "game", gameID, "score", game.State().Score)

	if runErr != nil {
		return fmt.Errorf("cannot run game: %w", runErr)
	}
	return nil
}

// checkGameOptions rejects a bad --difficulty or an unreadable or invalid
// game config before the terminal is taken over.
func checkGameOptions(configPath, difficulty string) error {
	if _, err := config.ParsePreset(difficulty); err != nil {
		return err
	}
	if _, err := config.LoadBreakout(configPath); err != nil {
		return err
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
// A zero --seed picks a fresh seed from the clock.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// currentUser names the local player in the score table.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
