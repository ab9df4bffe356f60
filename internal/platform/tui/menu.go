package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/storage"
)

// MenuChoice is an entry of the launcher menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceQuit}

// MenuKeyMap defines the key bindings of the launcher menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	keys      MenuKeyMap
	cursor    int
	width     int
	height    int
	highScore int
	player    string
	chosen    MenuChoice
}

// NewMenuModel creates a launcher menu. The store is only read for the
// high score line and may be nil.
func NewMenuModel(store *storage.Store, gameID, player string, width, height int) MenuModel {
	m := MenuModel{
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
		player: player,
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
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
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.chosen = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuChoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = menuChoices[m.cursor]
		case key.Matches(msg, m.keys.Scores):
			m.chosen = ChoiceScores
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("S T A R F A L L"))
	b.WriteString("\n\n")
	if m.player != "" {
		b.WriteString(menuItemStyle.Render("Pilot: " + m.player))
		b.WriteString("\n")
	}
	b.WriteString(menuItemStyle.Render(fmt.Sprintf("Best: %d", m.highScore)))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render(c.String()))
		} else {
			b.WriteString(menuItemStyle.Render(" " + c.String() + " "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuFooterStyle.Render("↑/↓ navigate · enter select · tab scores · q quit"))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Chosen returns the confirmed choice, or ChoiceNone while the user is
// still navigating.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
