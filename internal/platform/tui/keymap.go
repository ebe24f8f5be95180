package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	NextLevel  key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Fire},
		{k.Pause, k.Restart, k.NextLevel},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "up", "w"),
			key.WithHelp("f/↑", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n/enter", "next level"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Launch):
		frame.Set(core.ActionLaunch)
	case key.Matches(msg, k.Fire):
		frame.Set(core.ActionFire)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.NextLevel):
		frame.Set(core.ActionNextLevel)
	}
	return false
}

// DragTracker turns mouse press/motion/release events into horizontal
// drag deltas in screen cells.
type DragTracker struct {
	dragging bool
	lastX    int
}

// Track consumes a mouse message and returns the horizontal movement since
// the previous event of the same drag. Presses start a drag, releases end it.
func (d *DragTracker) Track(msg tea.MouseMsg) int {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return 0
		}
		d.dragging = true
		d.lastX = msg.X
		return 0
	case tea.MouseActionMotion:
		if !d.dragging {
			return 0
		}
		dx := msg.X - d.lastX
		d.lastX = msg.X
		return dx
	case tea.MouseActionRelease:
		d.dragging = false
	}
	return 0
}

// Dragging reports whether a drag is in progress.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}
