package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

type sessionScreen int

const (
	sessionMenu sessionScreen = iota
	sessionGame
	sessionScores
)

// SessionModel manages the full flow of one player: launcher menu, game
// and scoreboard. It is used for SSH sessions and the local menu command.
type SessionModel struct {
	gameID     string
	config     core.RuntimeConfig
	opts       Options
	screen     sessionScreen
	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session for the registered game gameID.
// cfg.ScreenW and cfg.ScreenH are the terminal size.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		gameID: gameID,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(opts.Store, gameID, opts.Player, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case sessionGame:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished game stop here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.gameID, m.opts.Player, m.config.ScreenW, m.config.ScreenH)
		m.screen = sessionScores
		return m, m.scoreboard.Init()

	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Error("cannot create game", "game", m.gameID, "error", err)
			}
			m.quitting = true
			return m, tea.Quit
		}
		cfg := m.config
		cfg.Seed = 0 // fresh seed per run
		gm := NewModel(game, cfg, m.opts)
		m.game = &gm
		m.screen = sessionGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu rebuilds the menu so it shows the latest high score.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.gameID, m.opts.Player, m.config.ScreenW, m.config.ScreenH)
	m.screen = sessionMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case sessionGame:
		return m.game.View()
	case sessionScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the launcher flow as a local program.
func RunSession(gameID string, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
