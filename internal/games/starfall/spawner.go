package starfall

import (
	"math/rand"

	"github.com/vovakirdan/starfall/internal/assets"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Phase tells the spawner whether it runs for the initial batch or for a
// timer fire. Offset correction differs between the two.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseTimer
)

// Spawner creates actors at random positions inside the play area.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.StarfallConfig
	sprites map[Kind]assets.Handle
}

// NewSpawner creates a spawner drawing from rng and resolving sprites
// through catalog.
func NewSpawner(rng *rand.Rand, cfg config.StarfallConfig, catalog *assets.Catalog) *Spawner {
	return &Spawner{
		rng: rng,
		cfg: cfg,
		sprites: map[Kind]assets.Handle{
			KindPlayer: catalog.Load(assets.PlayerSprite),
			KindEnemy:  catalog.Load(assets.EnemySprite),
			KindStar:   catalog.Load(assets.StarSprite),
		},
	}
}

// offset returns the downward correction applied above the threshold.
func (s *Spawner) offset(kind Kind, phase Phase) float64 {
	var k config.SpawnKind
	switch kind {
	case KindEnemy:
		k = s.cfg.Spawn.Enemy
	case KindStar:
		k = s.cfg.Spawn.Star
	default:
		return 0
	}
	if phase == PhaseInitial {
		return k.InitialOffset
	}
	return k.TimerOffset
}

// Position draws a spawn position uniformly over the area and applies the
// kind- and phase-specific vertical correction.
func (s *Spawner) Position(kind Kind, phase Phase, area core.Vec2) core.Vec2 {
	pos := core.V(s.rng.Float64()*area.X, s.rng.Float64()*area.Y)
	if pos.Y > s.cfg.Spawn.OffsetThreshold {
		pos.Y -= s.offset(kind, phase)
	}
	return pos
}

// Direction draws a direction with both components in [0, 1).
// Enemy directions are normalized; star directions keep their raw length
// unless star.normalize_direction is set.
func (s *Spawner) Direction(kind Kind) core.Vec2 {
	dir := core.V(s.rng.Float64(), s.rng.Float64())
	switch kind {
	case KindEnemy:
		return dir.Normalize()
	case KindStar:
		if s.cfg.Star.NormalizeDirection {
			return dir.Normalize()
		}
		return dir
	default:
		return core.Vec2{}
	}
}

// Spawn creates one enemy or star in w and returns its handle.
func (s *Spawner) Spawn(w *World, kind Kind, phase Phase, area core.Vec2) ActorID {
	pos := s.Position(kind, phase, area)
	dir := s.Direction(kind)
	return w.add(kind, pos, dir, s.sprites[kind])
}

// SpawnPlayer places the player at the centre of the area.
func (s *Spawner) SpawnPlayer(w *World, area core.Vec2) ActorID {
	return w.add(KindPlayer, area.Scale(0.5), core.Vec2{}, s.sprites[KindPlayer])
}
