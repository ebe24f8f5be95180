// arcade is a terminal breakout game with local and SSH play.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: breakout)
//	arcade menu              - Start menu with difficulty and scores
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores and stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write a session log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/study-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Breakout in your terminal",
	Long: `A terminal breakout game: clear the brick wall with the ball,
catch falling power-ups and shoot lasers.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Start menu with difficulty and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade play
  arcade play breakout --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores breakout`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a log to this file (the terminal is taken by the game)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newFileLogger returns a logger writing to --log, or a discarding logger.
// The returned closer must be called when done.
func newFileLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
