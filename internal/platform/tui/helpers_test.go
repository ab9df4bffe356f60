package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
)

// stubGame records what the platform feeds it and replays canned state.
type stubGame struct {
	resets  int
	steps   []core.InputFrame
	resized [2]int
	state   core.GameState
	pending []core.Event
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub arena")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *stubGame) Drain() []core.Event {
	out := g.pending
	g.pending = nil
	return out
}

func (g *stubGame) lastStep() core.InputFrame {
	return g.steps[len(g.steps)-1]
}

type recordingPlayer struct {
	played []audio.Cue
}

func (p *recordingPlayer) Play(c audio.Cue) {
	p.played = append(p.played, c)
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 27, TickRate: 60, Seed: 1}

func newTestModel(g *stubGame, opts Options) Model {
	m := NewModel(g, testConfig, opts)
	m.now = func() time.Time { return t0 }
	m.Init()
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(m Model, at time.Time) Model {
	m, _ = update(m, TickMsg(at))
	return m
}
