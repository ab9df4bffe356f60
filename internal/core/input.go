package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, H - move left
	ActionRight              // Right arrow, L - move right
	ActionUp                 // Up arrow, K - move up
	ActionDown               // Down arrow, J - move down
	ActionEnterGame          // G - switch to the game screen
	ActionMainMenu           // M - switch to the main menu screen
	ActionTogglePause        // Space - pause/resume the simulation
	ActionRestart            // R - restart after the player was destroyed
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionEnterGame:
		return "EnterGame"
	case ActionMainMenu:
		return "MainMenu"
	case ActionTogglePause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
//
// Actions holds edge-triggered presses seen since the previous tick.
// Held holds level-triggered state (movement keys currently considered down).
// Elapsed is the measured wall time since the previous tick; zero means the
// game should assume exactly one nominal tick passed.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions and held state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Elapsed = f.Elapsed
	return clone
}
