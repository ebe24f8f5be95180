package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/study-breakout/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("breakout", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	tests := []struct {
		name   string
		gameID string
		limit  int
		want   []int
	}{
		{"sorted descending", "breakout", 10, []int{200, 100, 50}},
		{"limit", "breakout", 2, []int{200, 100}},
		{"default limit", "breakout", 0, []int{200, 100, 50}},
		{"other game", "other", 10, []int{500}},
		{"unknown game", "missing", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores(tt.gameID, tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, s := range scores {
				if s.Score != tt.want[i] {
					t.Errorf("scores[%d] = %d, want %d", i, s.Score, tt.want[i])
				}
			}
		})
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{
		GameID:    "breakout",
		SessionID: "abc",
		Player:    "ann",
		Score:     420,
		Level:     3,
		Reason:    string(core.CompletionGameOver),
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a row ID")
	}

	e, err := store.ScoreBySession("abc")
	if err != nil {
		t.Fatalf("ScoreBySession() failed: %v", err)
	}
	if e.Player != "ann" || e.Score != 420 || e.Level != 3 || e.Reason != "gameover" {
		t.Errorf("entry = %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreSaveScoreDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("breakout", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].SessionID == "" {
		t.Error("session ID should be generated")
	}
	if scores[0].Level != 1 {
		t.Errorf("level = %d, want 1", scores[0].Level)
	}
}

func TestStoreScoreBySessionMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ScoreBySession("nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	results := []Result{
		{GameID: "breakout", Player: "ann", Score: 100},
		{GameID: "breakout", Player: "bob", Score: 300},
		{GameID: "breakout", Player: "ann", Score: 200},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	if high, _ = store.HighScore("breakout"); high != 300 {
		t.Errorf("HighScore = %d, want 300", high)
	}

	tests := []struct {
		player string
		want   int
	}{
		{"ann", 200},
		{"bob", 300},
		{"eve", 0},
	}
	for _, tt := range tests {
		t.Run(tt.player, func(t *testing.T) {
			got, err := store.PlayerBest("breakout", tt.player)
			if err != nil {
				t.Fatalf("PlayerBest() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("PlayerBest(%s) = %d, want %d", tt.player, got, tt.want)
			}
		})
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		store.SaveScore("breakout", score) //nolint:errcheck // checked via RecentScores
	}

	recent, err := store.RecentScores("breakout", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 10 {
		t.Errorf("recent = %+v", recent)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("breakout", 100) //nolint:errcheck // setup
	store.SaveScore("breakout", 200) //nolint:errcheck // setup
	store.SaveScore("other", 300)    //nolint:errcheck // setup

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("breakout", 10); len(scores) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other game should not be affected by clearing breakout")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(Result{GameID: "breakout", Score: 100, Level: 2}) //nolint:errcheck // setup
	store.SaveResult(Result{GameID: "breakout", Score: 300, Level: 4}) //nolint:errcheck // setup
	store.SaveResult(Result{GameID: "other", Score: 50})               //nolint:errcheck // setup

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.MaxLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg/total = %v/%d", stats.AvgScore, stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["other"].GamesCount != 1 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('breakout', 70);
	`)
	db.Close()
	if err != nil {
		t.Fatalf("legacy setup failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	scores, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 70 || scores[0].Level != 1 {
		t.Errorf("legacy scores = %+v", scores)
	}

	if _, err := store.SaveResult(Result{GameID: "breakout", Score: 80, Player: "ann"}); err != nil {
		t.Fatalf("SaveResult() on migrated db failed: %v", err)
	}
}
