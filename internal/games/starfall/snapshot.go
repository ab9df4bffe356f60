package starfall

import "github.com/vovakirdan/starfall/internal/core"

// ActorSnapshot is a copy of one live actor.
type ActorSnapshot struct {
	ID   ActorID
	Kind Kind
	Pos  core.Vec2
	Dir  core.Vec2
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Elapsed float64
	Score   int
	Screen  ScreenMode
	Run     RunMode
	Player  *ActorSnapshot
	Enemies []ActorSnapshot
	Stars   []ActorSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Elapsed: g.elapsed,
		Score:   g.score.Value(),
		Screen:  g.modes.Screen,
		Run:     g.modes.Run,
		Enemies: snapshotArena(g.world.enemies),
		Stars:   snapshotArena(g.world.stars),
	}
	if p := g.world.Player(); p != nil {
		s := snapshotActor(p)
		snap.Player = &s
	}
	return snap
}

func snapshotActor(a *Actor) ActorSnapshot {
	return ActorSnapshot{ID: a.ID, Kind: a.Kind, Pos: a.Pos, Dir: a.Dir}
}

func snapshotArena(actors []Actor) []ActorSnapshot {
	out := make([]ActorSnapshot, 0, len(actors))
	for i := range actors {
		if !actors[i].removed {
			out = append(out, snapshotActor(&actors[i]))
		}
	}
	return out
}
