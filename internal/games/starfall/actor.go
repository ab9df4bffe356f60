package starfall

import (
	"github.com/vovakirdan/starfall/internal/assets"
	"github.com/vovakirdan/starfall/internal/core"
)

// Kind identifies the three actor kinds.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindStar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// ActorID is a stable handle, unique within one run.
type ActorID uint64

// Actor is any spawned object with a position.
// Dir is the stored direction; the player never uses it.
type Actor struct {
	ID     ActorID
	Kind   Kind
	Pos    core.Vec2
	Dir    core.Vec2
	Sprite assets.Handle

	removed bool
}

// Removed reports whether the actor is marked for removal this tick.
func (a *Actor) Removed() bool {
	return a.removed
}

// World holds the typed actor arenas: zero or one player, any number of
// enemies and stars.
type World struct {
	nextID  ActorID
	player  *Actor
	enemies []Actor
	stars   []Actor
}

// newWorld returns an empty world.
func newWorld() *World {
	return &World{
		enemies: make([]Actor, 0, 8),
		stars:   make([]Actor, 0, 8),
	}
}

// allocID hands out the next handle. Handles are never reused.
func (w *World) allocID() ActorID {
	w.nextID++
	return w.nextID
}

// add inserts an actor of the given kind and returns its handle.
// Adding a player replaces any existing one, so there is never more than one.
func (w *World) add(kind Kind, pos, dir core.Vec2, sprite assets.Handle) ActorID {
	a := Actor{ID: w.allocID(), Kind: kind, Pos: pos, Dir: dir, Sprite: sprite}
	switch kind {
	case KindPlayer:
		a.Dir = core.Vec2{}
		w.player = &a
	case KindEnemy:
		w.enemies = append(w.enemies, a)
	case KindStar:
		w.stars = append(w.stars, a)
	}
	return a.ID
}

// Player returns the live player, or nil when there is none.
func (w *World) Player() *Actor {
	if w.player == nil || w.player.removed {
		return nil
	}
	return w.player
}

// Enemies returns the enemy arena.
func (w *World) Enemies() []Actor {
	return w.enemies
}

// Stars returns the star arena.
func (w *World) Stars() []Actor {
	return w.stars
}

// arena returns the slice for a non-player kind.
func (w *World) arena(kind Kind) []Actor {
	if kind == KindEnemy {
		return w.enemies
	}
	return w.stars
}

// Count returns the number of live actors of a kind.
func (w *World) Count(kind Kind) int {
	switch kind {
	case KindPlayer:
		if w.Player() != nil {
			return 1
		}
		return 0
	default:
		n := 0
		for i := range w.arena(kind) {
			if !w.arena(kind)[i].removed {
				n++
			}
		}
		return n
	}
}

// Find looks up a live actor by handle.
func (w *World) Find(id ActorID) (*Actor, bool) {
	if p := w.Player(); p != nil && p.ID == id {
		return p, true
	}
	for _, arena := range [][]Actor{w.enemies, w.stars} {
		for i := range arena {
			if arena[i].ID == id && !arena[i].removed {
				return &arena[i], true
			}
		}
	}
	return nil, false
}

// compact drops every actor marked for removal.
func (w *World) compact() {
	if w.player != nil && w.player.removed {
		w.player = nil
	}
	w.enemies = compactArena(w.enemies)
	w.stars = compactArena(w.stars)
}

func compactArena(actors []Actor) []Actor {
	kept := actors[:0]
	for _, a := range actors {
		if !a.removed {
			kept = append(kept, a)
		}
	}
	// Zero the tail so dropped actors do not linger in the backing array
	for i := len(kept); i < len(actors); i++ {
		actors[i] = Actor{}
	}
	return kept
}
