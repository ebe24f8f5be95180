package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/study-breakout/internal/registry"
	"github.com/vovakirdan/study-breakout/internal/storage"
)

const (
	minWidthForPanel = 76 // narrower terminals get the stats as a single line
	panelWidth       = 24
	scoreboardRows   = 50
)

// scoreView selects which sessions the scoreboard lists.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
)

func (v scoreView) String() string {
	if v == viewRecent {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Prev   key.Binding
	Next   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "top/recent")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev game")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded sessions of one game at a time.
type ScoreboardModel struct {
	store  *storage.Store
	player string
	games  []registry.GameInfo
	game   int
	view   scoreView

	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	playerBest int
	loadErr    error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	back     bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard. The player's own entries are
// marked in the table. A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// wide reports whether the stats panel fits next to the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 9},
		{Title: "Lvl", Width: 4},
		{Title: "When", Width: 15},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// GameID returns the game currently shown, or "" with no games registered.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload fetches the current view of the current game from the store.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.playerBest, m.loadErr = nil, nil, 0, nil

	id := m.GameID()
	if m.store != nil && id != "" {
		if m.view == viewRecent {
			m.scores, m.loadErr = m.store.RecentScores(id, scoreboardRows)
		} else {
			m.scores, m.loadErr = m.store.TopScores(id, scoreboardRows)
		}
		if st, err := m.store.GetGameStats(id); err == nil && st.GamesCount > 0 {
			m.stats = st
		}
		if m.player != "" {
			m.playerBest, _ = m.store.PlayerBest(id, m.player)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rank := strconv.Itoa(i + 1)
		if m.view == viewRecent {
			rank = "-"
		}
		name := e.Player
		if name == "" {
			name = "anonymous"
		}
		if m.player != "" && e.Player == m.player {
			name = "*" + name
		}
		rows[i] = table.Row{rank, name, humanize.Comma(int64(e.Score)), strconv.Itoa(e.Level), humanize.Time(e.CreatedAt)}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycleGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(delta int) {
	if len(m.games) < 2 {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := m.view.String()
	if len(m.games) > 0 {
		title += " - " + m.games[m.game].Title
		if len(m.games) > 1 {
			title = "< " + title + " >"
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	board := boxStyle.Render(m.tableView())
	if m.wide() {
		panel := boxStyle.Width(panelWidth).Render(m.statsPanel())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel))
	} else {
		b.WriteString(board)
		if m.stats != nil {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(StatsLine(m.stats)))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func (m ScoreboardModel) tableView() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	switch {
	case m.loadErr != nil:
		return empty.Render("Cannot read scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return empty.Render("No scores recorded yet.\nPlay a game to set one!")
	}
	return m.table.View()
}

// statsPanel lists the aggregate numbers of the current game.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil {
		return "No games played"
	}
	lines := []string{
		"Stats",
		"",
		fmt.Sprintf("Games    %s", humanize.Comma(int64(m.stats.GamesCount))),
		fmt.Sprintf("Best     %s", humanize.Comma(int64(m.stats.HighScore))),
		fmt.Sprintf("Average  %s", humanize.Comma(int64(m.stats.AvgScore))),
		fmt.Sprintf("Level    %d", m.stats.MaxLevel),
		fmt.Sprintf("Total    %s", humanize.Comma(m.stats.TotalScore)),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "", "Last played", humanize.Time(m.stats.LastPlayed))
	}
	if m.player != "" {
		lines = append(lines, "", "Your best", humanize.Comma(int64(m.playerBest)))
	}
	return strings.Join(lines, "\n")
}

// StatsLine summarizes a game's recorded sessions on one line.
func StatsLine(st *storage.GameStats) string {
	line := fmt.Sprintf("%s games  best %s  avg %s  top level %d",
		humanize.Comma(int64(st.GamesCount)),
		humanize.Comma(int64(st.HighScore)),
		humanize.Comma(int64(st.AvgScore)),
		st.MaxLevel,
	)
	if !st.LastPlayed.IsZero() {
		line += "  last " + humanize.Time(st.LastPlayed)
	}
	return line
}

// GoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) GoingBack() bool {
	return m.back
}

// RunScoreboard shows the scoreboard until the player leaves.
// It returns true when the player wants to go back to the menu.
func RunScoreboard(store *storage.Store, player string, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.GoingBack(), nil
}
