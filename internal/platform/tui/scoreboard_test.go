package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/study-breakout/internal/games/breakout"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Result{
		{Player: "ann", Score: 300, Level: 2, Reason: "gameover"},
		{Player: "bob", Score: 900, Level: 3, Reason: "gameover"},
		{Player: "ann", Score: 120, Level: 1, Reason: "exit"},
	} {
		r.GameID = breakout.GameID
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func sbUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestScoreboardTopAndRecent(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "ann", 100, 30)
	if m.GameID() != breakout.GameID {
		t.Fatalf("GameID() = %q", m.GameID())
	}

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "900" {
		t.Errorf("top row = %v, want bob 900", rows[0])
	}
	if rows[1][1] != "*ann" {
		t.Errorf("own entries should be marked, got %q", rows[1][1])
	}

	m, _ = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	rows = m.table.Rows()
	if rows[0][2] != "120" || rows[0][0] != "-" {
		t.Errorf("recent first row = %v, want the last session unranked", rows[0])
	}
	if !strings.Contains(m.View(), "RECENT SESSIONS") {
		t.Error("title should follow the view")
	}

	m, _ = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.table.Rows()[0][2] != "900" {
		t.Error("second tab should return to high scores")
	}
}

func TestScoreboardStatsLayout(t *testing.T) {
	store := seededStore(t)

	tests := []struct {
		name  string
		width int
		want  []string
	}{
		{"wide panel", 100, []string{"Stats", "Best     900", "Your best", "300"}},
		{"narrow line", 60, []string{"3 games", "best 900", "top level 3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := NewScoreboardModel(store, "ann", tc.width, 30).View()
			for _, want := range tc.want {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("empty view = %q", view)
	}
	if !strings.Contains(view, "No games played") {
		t.Error("stats panel should say nothing was played")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantBack bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"q quits", runeKey("q"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cmd := sbUpdate(t, NewScoreboardModel(nil, "", 80, 24), tc.msg)
			if cmd == nil {
				t.Fatal("leaving should quit the program")
			}
			if m.GoingBack() != tc.wantBack {
				t.Errorf("GoingBack() = %v, want %v", m.GoingBack(), tc.wantBack)
			}
			if m.View() != "" {
				t.Error("view should be empty after leaving")
			}
		})
	}
}
