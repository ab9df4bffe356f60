package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// arena800x600 yields an 800x600 play area with the default cell scale
// (80 columns of 10 units, 24 rows of 25 units below a 2-row HUD).
var arena800x600 = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  26,
	TickRate: 60,
	Seed:     1,
}

// emptyConfig is the default configuration without initial spawns, so
// tests can place every actor themselves.
func emptyConfig() config.StarfallConfig {
	cfg := config.DefaultStarfallConfig()
	cfg.Spawn.Enemy.Initial = 0
	cfg.Spawn.Star.Initial = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.StarfallConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(arena800x600)
	if area := g.Area(); area != core.V(800, 600) {
		t.Fatalf("Area() = %v, expected (800, 600)", area)
	}
	return g
}

// runGame puts the game straight into the running state.
func runGame(g *Game) {
	g.modes.Screen = ScreenGame
	g.modes.Run = RunRunning
}

func eventsOf(events []core.Event, kind core.EventKind) []core.Event {
	var out []core.Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func cuesOf(events []core.Event) []string {
	var out []string
	for _, e := range eventsOf(events, core.EventCue) {
		out = append(out, e.Cue)
	}
	return out
}
