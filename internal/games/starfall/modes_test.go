package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesInitialState(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	m := g.Modes()

	if m.Screen != ScreenMainMenu || m.Run != RunPaused {
		t.Errorf("initial modes = %s/%s, expected MainMenu/Paused", m.Screen, m.Run)
	}
	if st := g.State(); !st.Paused || st.Mode != "MainMenu" {
		t.Errorf("State() = %+v", st)
	}
}

func TestScreenTransitionsApplyNextTick(t *testing.T) {
	g := newTestGame(t, emptyConfig())

	g.Step(press(core.ActionEnterGame))
	if g.Modes().Screen != ScreenMainMenu {
		t.Fatal("screen change must wait for the next tick")
	}
	if !g.modes.Pending() {
		t.Fatal("request should sit in the pending slot")
	}

	g.Step(core.NewInputFrame())
	if g.Modes().Screen != ScreenGame {
		t.Fatalf("screen = %s, expected Game", g.Modes().Screen)
	}

	g.Step(press(core.ActionMainMenu))
	g.Step(core.NewInputFrame())
	if g.Modes().Screen != ScreenMainMenu {
		t.Errorf("screen = %s, expected MainMenu", g.Modes().Screen)
	}
}

func TestPauseOnlyToggledInGame(t *testing.T) {
	g := newTestGame(t, emptyConfig())

	// Ignored in the main menu
	g.Step(press(core.ActionTogglePause))
	g.Step(core.NewInputFrame())
	if g.Modes().Run != RunPaused {
		t.Fatal("pause key must be inert outside the game screen")
	}

	// Entering the game and toggling on the same tick: the toggle sees
	// the old screen and is ignored
	g.Step(press(core.ActionEnterGame, core.ActionTogglePause))
	g.Step(core.NewInputFrame())
	if m := g.Modes(); m.Screen != ScreenGame || m.Run != RunPaused {
		t.Fatalf("modes = %s/%s, expected Game/Paused", m.Screen, m.Run)
	}

	g.Step(press(core.ActionTogglePause))
	g.Step(core.NewInputFrame())
	if g.Modes().Run != RunRunning {
		t.Fatalf("run = %s, expected Running", g.Modes().Run)
	}

	g.Step(press(core.ActionTogglePause))
	g.Step(core.NewInputFrame())
	if g.Modes().Run != RunPaused {
		t.Errorf("run = %s, expected Paused", g.Modes().Run)
	}
}

func TestPauseOncePerTick(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	runGame(g)

	// One frame carries at most one press of a key, so a tick toggles once
	g.Step(press(core.ActionTogglePause))
	g.Step(core.NewInputFrame())
	if g.Modes().Run != RunPaused {
		t.Errorf("run = %s after one press, expected Paused", g.Modes().Run)
	}
}

func TestModeNotices(t *testing.T) {
	g := newTestGame(t, emptyConfig())

	g.Step(press(core.ActionEnterGame))
	notices := eventsOf(g.Drain(), core.EventNotice)
	if len(notices) != 1 || notices[0].Message != "Entered game" {
		t.Errorf("notices = %+v, expected one 'Entered game'", notices)
	}

	g.Step(press(core.ActionTogglePause))
	notices = eventsOf(g.Drain(), core.EventNotice)
	if len(notices) != 1 || notices[0].Message != "Simulation running" {
		t.Errorf("notices = %+v, expected one 'Simulation running'", notices)
	}
}

func TestEnemyGating(t *testing.T) {
	tests := []struct {
		name   string
		screen ScreenMode
		run    RunMode
		moves  bool
	}{
		{"menu paused", ScreenMainMenu, RunPaused, false},
		{"menu running", ScreenMainMenu, RunRunning, false},
		{"game paused", ScreenGame, RunPaused, false},
		{"game running", ScreenGame, RunRunning, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, emptyConfig())
			id := g.world.add(KindEnemy, core.V(100, 100), core.V(1, 0), 0)
			g.modes.Screen = tc.screen
			g.modes.Run = tc.run

			g.Step(core.NewInputFrame())

			e, _ := g.World().Find(id)
			moved := e.Pos.X != 100
			if moved != tc.moves {
				t.Errorf("enemy moved = %v, expected %v", moved, tc.moves)
			}
		})
	}
}

func TestStarsAndPlayerIgnoreModes(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	id := g.world.add(KindStar, core.V(100, 100), core.V(0.5, 0.5), 0)

	in := core.NewInputFrame()
	in.Hold(core.ActionUp)
	g.Step(in) // main menu, paused

	s, _ := g.World().Find(id)
	if s.Pos == core.V(100, 100) {
		t.Error("stars keep moving in the main menu")
	}
	if p := g.World().Player(); p.Pos.Y <= 300 {
		t.Error("the player keeps moving in the main menu")
	}
}

func TestGateAllActors(t *testing.T) {
	cfg := emptyConfig()
	cfg.Simulation.GateAllActors = true
	g := newTestGame(t, cfg)
	id := g.world.add(KindStar, core.V(100, 100), core.V(0.5, 0.5), 0)

	in := core.NewInputFrame()
	in.Hold(core.ActionUp)
	g.Step(in)

	if s, _ := g.World().Find(id); s.Pos != core.V(100, 100) {
		t.Errorf("star moved to %v while gated", s.Pos)
	}
	if p := g.World().Player(); p.Pos != core.V(400, 300) {
		t.Errorf("player moved to %v while gated", p.Pos)
	}

	runGame(g)
	g.Step(in)
	if s, _ := g.World().Find(id); s.Pos == core.V(100, 100) {
		t.Error("star should move once running")
	}
}
