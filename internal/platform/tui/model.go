package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// helpRows is the number of terminal rows reserved for the help footer.
const helpRows = 1

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Store       *storage.Store
	Logger      *log.Logger
	Audio       audio.Player
	HoldTimeout time.Duration
	Player      string // name recorded with saved runs
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       *EventSink
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	width      int
	height     int
	lastTick   time.Time
	runTime    time.Duration
	now        func() time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been recorded for the current game over
}

// gameSize converts a terminal size to the size available to the game.
func gameSize(width, height int) (int, int) {
	return core.Max(width, 0), core.Max(height-helpRows, 0)
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenW, cfg.ScreenH = gameSize(width, height)

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sink:       NewEventSink(opts.Logger, opts.Audio),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		held:       NewHeldKeys(opts.HoldTimeout),
		inputFrame: core.NewInputFrame(),
		player:     opts.Player,
		width:      width,
		height:     height,
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.sink.Logger().Info("Run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	action, held := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case held:
		m.held.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adopts the new terminal size. Games that support it keep
// their run; others are reset unless the run is over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.config.ScreenW, m.config.ScreenH = gameSize(msg.Width, msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The full help overlay freezes the run
	if m.help.ShowAll {
		m.lastTick = time.Time{}
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.inputFrame, now)
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State
	if !wasOver {
		elapsed := m.inputFrame.Elapsed
		if elapsed <= 0 {
			elapsed = m.config.TickInterval()
		}
		m.runTime += elapsed
	}

	if src, ok := m.game.(registry.EventSource); ok {
		if score, over := m.sink.Dispatch(src.Drain()); over {
			m.saveRun(score)
		}
	}
	if m.gameState.GameOver {
		m.saveRun(m.gameState.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.runTime = 0
	m.lastTick = time.Time{}
	m.held.Reset()
	m.inputFrame.Clear()
	m.sink.Logger().Info("Run restarted", "seed", m.config.Seed)
}

// saveRun records the finished run once per game over.
func (m *Model) saveRun(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    score,
		Duration: m.runTime,
		Seed:     m.config.Seed,
	})
	if err != nil {
		m.sink.Logger().Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.sink.Logger().Warn("could not save screenshot", "error", err)
		return
	}
	m.sink.Logger().Info("Screenshot saved", "path", path)
}

func writeScreenshot(gameID string, screen *core.Screen, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".starfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.help.ShowAll {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			helpBoxStyle.Render(m.help.View(m.keys)))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
