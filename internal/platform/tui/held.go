package tui

import (
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

// DefaultHoldTimeout is how long a key press keeps its direction held
// when no repeat arrives.
const DefaultHoldTimeout = 150 * time.Millisecond

// HeldKeys approximates key state from key presses. Terminals only report
// presses (and auto-repeats), so a direction counts as held until the
// timeout passes without another press.
type HeldKeys struct {
	timeout   time.Duration
	lastPress map[core.Action]time.Time
}

// NewHeldKeys creates a tracker. A non-positive timeout uses DefaultHoldTimeout.
func NewHeldKeys(timeout time.Duration) *HeldKeys {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HeldKeys{
		timeout:   timeout,
		lastPress: make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now.
// Opposite directions cancel each other so a reversal is immediate.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp := opposite(a); opp != core.ActionNone {
		delete(h.lastPress, opp)
	}
	h.lastPress[a] = now
}

// Apply marks every action still within its timeout as held in frame and
// forgets the expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.lastPress {
		if now.Sub(t) < h.timeout {
			frame.Hold(a)
		} else {
			delete(h.lastPress, a)
		}
	}
}

// Reset forgets every press.
func (h *HeldKeys) Reset() {
	clear(h.lastPress)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
