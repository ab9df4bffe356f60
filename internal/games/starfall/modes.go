package starfall

import "github.com/vovakirdan/starfall/internal/core"

// ScreenMode is the top-level application screen.
type ScreenMode int

const (
	ScreenMainMenu ScreenMode = iota
	ScreenGame
	// ScreenGameOver exists for completeness; no input transitions into it.
	ScreenGameOver
)

// String returns a human-readable name for the screen mode.
func (s ScreenMode) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenGame:
		return "Game"
	case ScreenGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunMode is the simulation pause state.
type RunMode int

const (
	RunPaused RunMode = iota
	RunRunning
)

// String returns a human-readable name for the run mode.
func (r RunMode) String() string {
	if r == RunRunning {
		return "Running"
	}
	return "Paused"
}

// Modes holds both mode variables. Each has a current value and a pending
// slot; requests only fill the slot, and Apply promotes it at the start of
// the next tick.
type Modes struct {
	Screen ScreenMode
	Run    RunMode

	pendingScreen *ScreenMode
	pendingRun    *RunMode
}

// RequestScreen schedules a screen change for the next tick.
func (m *Modes) RequestScreen(s ScreenMode) {
	m.pendingScreen = &s
}

// RequestRun schedules a run-mode change for the next tick.
func (m *Modes) RequestRun(r RunMode) {
	m.pendingRun = &r
}

// Pending reports whether any request is waiting to be applied.
func (m *Modes) Pending() bool {
	return m.pendingScreen != nil || m.pendingRun != nil
}

// Apply promotes pending values to current ones and clears the slots.
func (m *Modes) Apply() {
	if m.pendingScreen != nil {
		m.Screen = *m.pendingScreen
		m.pendingScreen = nil
	}
	if m.pendingRun != nil {
		m.Run = *m.pendingRun
		m.pendingRun = nil
	}
}

// Active reports whether gated systems run this tick.
func (m *Modes) Active() bool {
	return m.Screen == ScreenGame && m.Run == RunRunning
}

// handleInput turns edge-triggered mode keys into requests and logs them.
// The pause key only works while the current screen is the game; a press
// on the same tick as entering the game is therefore ignored.
func (m *Modes) handleInput(in core.InputFrame, out *Outbox) {
	if in.Has(core.ActionEnterGame) {
		m.RequestScreen(ScreenGame)
		out.Push(core.Notice("Entered game", "screen", ScreenGame.String()))
	}
	if in.Has(core.ActionMainMenu) {
		m.RequestScreen(ScreenMainMenu)
		out.Push(core.Notice("Entered main menu", "screen", ScreenMainMenu.String()))
	}

	if in.Has(core.ActionTogglePause) && m.Screen == ScreenGame {
		if m.Run == RunRunning {
			m.RequestRun(RunPaused)
			out.Push(core.Notice("Simulation paused", "run", RunPaused.String()))
		} else {
			m.RequestRun(RunRunning)
			out.Push(core.Notice("Simulation running", "run", RunRunning.String()))
		}
	}
}
