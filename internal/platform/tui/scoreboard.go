package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Below this the pilot column is dropped
	maxScores     = 100 // Max scores to load
)

// ScoreView selects which runs the scoreboard lists.
type ScoreView int

const (
	ViewTop  ScoreView = iota // best runs of everyone
	ViewMine                  // most recent runs of the current pilot
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store      *storage.Store
	gameID     string
	player     string
	view       ScoreView
	scores     []storage.ScoreEntry
	stats      storage.Stats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	standalone bool // back quits the program
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	tableWidth := m.width - 6 // Border + padding
	if tableWidth < tableMinWidth {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 14},
		}
	}

	pilot := tableWidth - (6 + 8 + 8 + 14) - 10 // cell padding
	pilot = max(8, min(pilot, 24))
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Pilot", Width: pilot},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, stats, help and borders
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

// loadScores reloads the runs and stats for the current view.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = storage.Stats{GameID: m.gameID}

	if m.store != nil {
		var scores []storage.ScoreEntry
		var err error
		if m.view == ViewMine {
			scores, err = m.store.PlayerScores(m.gameID, m.player, maxScores)
		} else {
			scores, err = m.store.TopScores(m.gameID, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if st, err := m.store.Stats(m.gameID); err == nil {
			m.stats = st
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	wide := len(m.table.Columns()) == 5

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{fmt.Sprintf("#%d", i+1)}
		if wide {
			row = append(row, pilotName(s.Player))
		}
		row = append(row,
			fmt.Sprintf("%d", s.Score),
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		)
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func pilotName(p string) string {
	if p == "" {
		return "anonymous"
	}
	return p
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewTop {
				m.view = ViewMine
			} else {
				m.view = ViewTop
			}
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "HIGH SCORES"
	if m.view == ViewMine {
		title = "YOUR RUNS - " + pilotName(m.player)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("%d runs · best %d · avg %.1f · %s flown",
		m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, formatDuration(m.stats.TotalTime))
	b.WriteString(centerText(statsStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nCollect a star to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, gameID, player string, width, height int) error {
	model := NewScoreboardModel(store, gameID, player, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
