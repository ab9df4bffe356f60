package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Vec2
		expected bool
	}{
		{"same point", core.V(0, 0), core.V(0, 0), true},
		{"close", core.V(400, 300), core.V(410, 300), true},
		{"just inside", core.V(0, 0), core.V(63.9, 0), true},
		{"touching is not overlapping", core.V(0, 0), core.V(64, 0), false},
		{"far", core.V(0, 0), core.V(300, 400), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b, 64, 64); got != tc.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestEnemyHitsPlayerScenario(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	g.world.add(KindEnemy, core.V(410, 300), core.V(1, 0), 0)

	res := g.Step(core.NewInputFrame())

	if g.World().Player() != nil {
		t.Error("player should be removed")
	}
	if !res.State.GameOver {
		t.Error("state should report game over")
	}

	events := g.Drain()
	overs := eventsOf(events, core.EventGameOver)
	if len(overs) != 1 {
		t.Fatalf("got %d game-over events, expected 1", len(overs))
	}
	if overs[0].Score != 0 {
		t.Errorf("game-over score = %d, expected 0", overs[0].Score)
	}

	cues := cuesOf(events)
	if len(cues) != 1 || cues[0] != audio.CueExplosion.String() {
		t.Errorf("cues = %v, expected one explosion", cues)
	}

	// The dead player never triggers again
	g.Step(core.NewInputFrame())
	if again := eventsOf(g.Drain(), core.EventGameOver); len(again) != 0 {
		t.Errorf("got %d extra game-over events after death", len(again))
	}
}

func TestGameOverCarriesScore(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	g.score.value = 7
	g.world.add(KindEnemy, core.V(400, 320), core.V(0, 1), 0)

	g.Step(core.NewInputFrame())

	overs := eventsOf(g.Drain(), core.EventGameOver)
	if len(overs) != 1 || overs[0].Score != 7 {
		t.Errorf("game-over events = %+v, expected one with score 7", overs)
	}
}

func TestSeveralEnemiesOneDeath(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	g.world.add(KindEnemy, core.V(400, 300), core.V(1, 0), 0)
	g.world.add(KindEnemy, core.V(405, 300), core.V(1, 0), 0)
	g.world.add(KindEnemy, core.V(395, 310), core.V(1, 0), 0)

	g.Step(core.NewInputFrame())

	events := g.Drain()
	if n := len(eventsOf(events, core.EventGameOver)); n != 1 {
		t.Errorf("got %d game-over events, expected exactly 1", n)
	}
	if n := len(cuesOf(events)); n != 1 {
		t.Errorf("got %d cues, expected exactly 1 explosion", n)
	}
	if g.World().Count(KindEnemy) != 3 {
		t.Errorf("enemies are never removed by a hit, count = %d", g.World().Count(KindEnemy))
	}
}

func TestPlayerCollectsStars(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	g.cfg.Star.Speed = 0
	near := g.world.add(KindStar, core.V(420, 300), core.V(0.5, 0.5), 0)
	g.world.add(KindStar, core.V(400, 280), core.V(0.5, 0.5), 0)
	far := g.world.add(KindStar, core.V(700, 500), core.V(0.5, 0.5), 0)

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 2 {
		t.Errorf("score = %d, expected 2", res.State.Score)
	}
	if _, ok := g.World().Find(near); ok {
		t.Error("collected star should be removed")
	}
	if _, ok := g.World().Find(far); !ok {
		t.Error("distant star should remain")
	}
	if len(g.World().Stars()) != 1 {
		t.Errorf("star arena has %d entries after compaction, expected 1", len(g.World().Stars()))
	}

	events := g.Drain()
	collects := 0
	for _, c := range cuesOf(events) {
		if c == audio.CueCollect.String() {
			collects++
		}
	}
	if collects != 2 {
		t.Errorf("got %d collect cues, expected 2", collects)
	}
	if res.State.GameOver {
		t.Error("collecting stars must not end the run")
	}
}

func TestStarAndEnemySameTick(t *testing.T) {
	g := newTestGame(t, emptyConfig())
	g.cfg.Star.Speed = 0
	g.world.add(KindStar, core.V(380, 300), core.V(0.5, 0.5), 0)
	g.world.add(KindEnemy, core.V(420, 300), core.V(1, 0), 0)

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	overs := eventsOf(g.Drain(), core.EventGameOver)
	if len(overs) != 1 || overs[0].Score != 1 {
		t.Errorf("game-over events = %+v, expected one carrying score 1", overs)
	}
	if g.World().Count(KindStar) != 0 || g.World().Player() != nil {
		t.Error("star and player should both be gone after the tick")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	cfg := emptyConfig()
	cfg.Spawn.Star.Initial = 40
	cfg.Spawn.Enemy.Initial = 3
	cfg.Spawn.Star.PeriodSeconds = 0.5
	g := newTestGame(t, cfg)
	runGame(g)

	keys := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	last := 0
	collects := 0
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		in.Hold(keys[(i/40)%len(keys)])
		res := g.Step(in)

		if res.State.Score < last {
			t.Fatalf("tick %d: score dropped from %d to %d", i, last, res.State.Score)
		}
		last = res.State.Score

		for _, c := range cuesOf(g.Drain()) {
			if c == audio.CueCollect.String() {
				collects++
			}
		}
	}

	if collects != last {
		t.Errorf("collect cues = %d, final score = %d; every point needs exactly one star", collects, last)
	}
}

func TestCompactDropsMarkedActors(t *testing.T) {
	w := newWorld()
	a := w.add(KindEnemy, core.V(1, 1), core.V(1, 0), 0)
	b := w.add(KindEnemy, core.V(2, 2), core.V(1, 0), 0)
	c := w.add(KindEnemy, core.V(3, 3), core.V(1, 0), 0)

	w.enemies[1].removed = true
	if _, ok := w.Find(b); ok {
		t.Error("marked actor must not be found before compaction")
	}
	if w.Count(KindEnemy) != 2 {
		t.Errorf("Count() = %d, expected 2 live enemies", w.Count(KindEnemy))
	}

	w.compact()

	if len(w.enemies) != 2 || w.enemies[0].ID != a || w.enemies[1].ID != c {
		t.Errorf("after compact got %+v", w.enemies)
	}

	d := w.add(KindEnemy, core.V(4, 4), core.V(1, 0), 0)
	if d <= c {
		t.Errorf("handle %d reused or out of order after %d", d, c)
	}
}

func TestAtMostOnePlayer(t *testing.T) {
	w := newWorld()
	first := w.add(KindPlayer, core.V(1, 1), core.V(1, 1), 0)
	second := w.add(KindPlayer, core.V(2, 2), core.V(1, 1), 0)

	if w.Count(KindPlayer) != 1 {
		t.Errorf("player count = %d, expected 1", w.Count(KindPlayer))
	}
	if _, ok := w.Find(first); ok {
		t.Error("replaced player should be gone")
	}
	p, ok := w.Find(second)
	if !ok {
		t.Fatal("new player missing")
	}
	if !p.Dir.IsZero() {
		t.Errorf("player direction = %v, players carry no direction", p.Dir)
	}
}
