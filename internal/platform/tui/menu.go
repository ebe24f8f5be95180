package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menu rows
const (
	menuPlay = iota
	menuDifficulty
	menuScores
	menuQuit
	menuRows
)

// presets in the order the difficulty row cycles through them.
var presets = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var presetNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "5 lives, wide paddle, slow ball",
	config.DifficultyNormal: "3 lives",
	config.DifficultyHard:   "2 lives, narrow paddle, fast ball",
	config.DifficultyFixed:  "ball speed never increases",
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "a", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "d", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor int
	preset int
	width  int
	height int
	config core.RuntimeConfig
	keys   MenuKeyMap
	choice MenuChoice
}

// NewMenuModel creates a new menu model with the given preset preselected.
func NewMenuModel(cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
	for i, p := range presets {
		if p == difficulty {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < menuRows-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor == menuDifficulty {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == menuDifficulty {
			m.preset = (m.preset + 1) % len(presets)
		}

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuChoiceScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case menuPlay:
			m.choice = MenuChoicePlay
			return m, tea.Quit
		case menuDifficulty:
			m.preset = (m.preset + 1) % len(presets)
		case menuScores:
			m.choice = MenuChoiceScores
			return m, tea.Quit
		case menuQuit:
			m.choice = MenuChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B R E A K O U T", m.width)))
	b.WriteString("\n\n")

	rows := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"High Scores",
		"Quit",
	}
	for i, row := range rows {
		line := centerText("  "+row, m.width)
		if i == m.cursor {
			line = activeStyle.Render(centerText("> "+row, m.width))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(presetNotes[m.Difficulty()], m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuChoiceNone while choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return presets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the start menu and returns the player's choice.
func RunMenu(cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
