package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	EnterGame  key.Binding
	MainMenu   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EnterGame, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.EnterGame, k.MainMenu, k.Pause, k.Restart},
		{k.Screenshot, k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		EnterGame: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "game"),
		),
		MainMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause/run"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave (paused or over)"),
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

// Action translates a key message to a game action.
// held reports whether the action is a movement direction, which the
// model tracks as held rather than as a single press.
func (k GameKeyMap) Action(msg tea.KeyMsg) (action core.Action, held bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, true
	case key.Matches(msg, k.Down):
		return core.ActionDown, true
	case key.Matches(msg, k.EnterGame):
		return core.ActionEnterGame, false
	case key.Matches(msg, k.MainMenu):
		return core.ActionMainMenu, false
	case key.Matches(msg, k.Pause):
		return core.ActionTogglePause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}
