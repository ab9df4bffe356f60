package starfall

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/starfall/internal/assets"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

func TestSpawnPositionOffsets(t *testing.T) {
	cfg := config.DefaultStarfallConfig()
	area := core.V(1000, 1000)

	tests := []struct {
		name   string
		kind   Kind
		phase  Phase
		offset float64
	}{
		{"enemy initial", KindEnemy, PhaseInitial, 206.5265},
		{"enemy timer", KindEnemy, PhaseTimer, 406.5265},
		{"star initial", KindStar, PhaseInitial, 406.5265},
		{"star timer", KindStar, PhaseTimer, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// A twin generator replays the raw draws
			s := NewSpawner(rand.New(rand.NewSource(42)), cfg, assets.NewCatalog())
			twin := rand.New(rand.NewSource(42))

			shifted := 0
			for i := 0; i < 500; i++ {
				rawX := twin.Float64() * area.X
				rawY := twin.Float64() * area.Y
				want := core.V(rawX, rawY)
				if rawY > cfg.Spawn.OffsetThreshold {
					want.Y -= tc.offset
					shifted++
				}

				if got := s.Position(tc.kind, tc.phase, area); got != want {
					t.Fatalf("sample %d: Position() = %v, expected %v", i, got, want)
				}
			}
			if shifted == 0 {
				t.Fatal("no sample crossed the threshold")
			}
		})
	}
}

func TestSpawnPositionInsideArea(t *testing.T) {
	cfg := config.DefaultStarfallConfig()
	s := NewSpawner(rand.New(rand.NewSource(3)), cfg, assets.NewCatalog())
	area := core.V(800, 600)

	for i := 0; i < 1000; i++ {
		p := s.Position(KindEnemy, PhaseInitial, area)
		if p.X < 0 || p.X >= area.X || p.Y < 0 || p.Y >= area.Y {
			t.Fatalf("spawn %v outside area %v", p, area)
		}
	}
}

func TestSpawnDirection(t *testing.T) {
	t.Run("enemy is unit length", func(t *testing.T) {
		s := NewSpawner(rand.New(rand.NewSource(9)), config.DefaultStarfallConfig(), assets.NewCatalog())
		for i := 0; i < 200; i++ {
			d := s.Direction(KindEnemy)
			if !d.IsZero() && math.Abs(d.Length()-1) > 1e-12 {
				t.Fatalf("enemy direction %v has length %f", d, d.Length())
			}
			if d.X < 0 || d.Y < 0 {
				t.Fatalf("enemy direction %v has a negative component", d)
			}
		}
	})

	t.Run("star keeps raw draws", func(t *testing.T) {
		s := NewSpawner(rand.New(rand.NewSource(9)), config.DefaultStarfallConfig(), assets.NewCatalog())
		twin := rand.New(rand.NewSource(9))
		for i := 0; i < 200; i++ {
			want := core.V(twin.Float64(), twin.Float64())
			if got := s.Direction(KindStar); got != want {
				t.Fatalf("star direction = %v, expected raw %v", got, want)
			}
		}
	})

	t.Run("star normalized when configured", func(t *testing.T) {
		cfg := config.DefaultStarfallConfig()
		cfg.Star.NormalizeDirection = true
		s := NewSpawner(rand.New(rand.NewSource(9)), cfg, assets.NewCatalog())
		for i := 0; i < 200; i++ {
			d := s.Direction(KindStar)
			if !d.IsZero() && math.Abs(d.Length()-1) > 1e-12 {
				t.Fatalf("star direction %v has length %f", d, d.Length())
			}
		}
	})
}

func TestResetSpawnsInitialBatches(t *testing.T) {
	cfg := config.DefaultStarfallConfig()
	cfg.Spawn.Enemy.Initial = 3
	cfg.Spawn.Star.Initial = 5
	g := NewWithConfig(cfg)
	g.Reset(arena800x600)

	w := g.World()
	if w.Count(KindPlayer) != 1 || w.Count(KindEnemy) != 3 || w.Count(KindStar) != 5 {
		t.Errorf("counts = %d/%d/%d, expected 1/3/5",
			w.Count(KindPlayer), w.Count(KindEnemy), w.Count(KindStar))
	}
	if p := w.Player(); p.Pos != core.V(400, 300) {
		t.Errorf("player at %v, expected the centre (400, 300)", p.Pos)
	}

	catalog := g.catalog
	for _, e := range w.Enemies() {
		if catalog.Sprite(e.Sprite).Path != assets.EnemySprite {
			t.Errorf("enemy sprite = %q", catalog.Sprite(e.Sprite).Path)
		}
	}
	for _, s := range w.Stars() {
		if catalog.Sprite(s.Sprite).Path != assets.StarSprite {
			t.Errorf("star sprite = %q", catalog.Sprite(s.Sprite).Path)
		}
	}
	if catalog.Sprite(w.Player().Sprite).Path != assets.PlayerSprite {
		t.Errorf("player sprite = %q", catalog.Sprite(w.Player().Sprite).Path)
	}
}
