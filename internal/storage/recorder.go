package storage

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// Recorder persists completion reports for one player.
// It implements core.CompletionReporter.
type Recorder struct {
	store  *Store
	player string
	logger *log.Logger

	// LastSession is the session ID of the most recent saved report.
	LastSession string
}

// NewRecorder creates a recorder writing to store. A nil logger discards
// failures.
func NewRecorder(store *Store, player string, logger *log.Logger) *Recorder {
	return &Recorder{
		store:  store,
		player: player,
		logger: logger,
	}
}

// ReportCompletion saves the final score of a session. Empty scores are
// not recorded. Failures are logged, never returned to the game.
func (r *Recorder) ReportCompletion(c core.Completion) {
	if r == nil || r.store == nil || c.Score <= 0 {
		return
	}

	sessionID := uuid.NewString()
	_, err := r.store.SaveResult(Result{
		GameID:    c.GameID,
		SessionID: sessionID,
		Player:    r.player,
		Score:     c.Score,
		Level:     c.Level,
		Reason:    string(c.Reason),
	})
	if err != nil {
		if r.logger != nil {
			r.logger.Error("cannot save score", "game", c.GameID, "player", r.player, "err", err)
		}
		return
	}

	r.LastSession = sessionID
	if r.logger != nil {
		r.logger.Info("score saved",
			"game", c.GameID,
			"player", r.player,
			"score", c.Score,
			"level", c.Level,
			"reason", c.Reason,
			"session", sessionID,
		)
	}
}

var _ core.CompletionReporter = (*Recorder)(nil)
