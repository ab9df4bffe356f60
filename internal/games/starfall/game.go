// Package starfall implements the Starfall arcade game: the player steers a
// ball around the arena, collects stars for points and dies on touching an
// enemy. Enemies and stars drift in straight lines and bounce off the walls;
// each kind also trickles in on its own spawn timer.
//
// World coordinates are continuous, x grows right and y grows up. The play
// area is derived from the terminal size through the arena cell scale.
package starfall

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/starfall/internal/assets"
	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "starfall"

var (
	configMu   sync.RWMutex
	configured = config.DefaultStarfallConfig()
)

// Configure sets the configuration used by games created through the
// registry. It is called once by the CLI after loading the config file.
func Configure(cfg config.StarfallConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configured = cfg
}

func currentConfig() config.StarfallConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return configured
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// tickContext carries the per-tick shared state every subsystem needs.
type tickContext struct {
	modes         *Modes
	score         *ScoreCounter
	area          core.Vec2
	dt            float64
	rng           *rand.Rand
	out           *Outbox
	starRandomCue bool
}

// cue queues a sound cue.
func (c *tickContext) cue(cue audio.Cue) {
	c.out.Push(core.CueEvent(cue.String()))
}

// Game implements registry.Game, registry.Resizable and registry.EventSource.
type Game struct {
	cfg     config.StarfallConfig
	runtime core.RuntimeConfig

	rng     *rand.Rand
	catalog *assets.Catalog
	spawner *Spawner
	world   *World

	modes      Modes
	score      ScoreCounter
	enemyTimer SpawnTimer
	starTimer  SpawnTimer
	out        Outbox

	tick      uint64
	elapsed   float64 // simulated seconds
	started   bool    // Reset has run
	populated bool    // player and initial batches have been spawned
}

// New creates a game using the configuration set by Configure.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.StarfallConfig) *Game {
	return &Game{
		cfg:     cfg,
		catalog: assets.NewCatalog(),
		world:   newWorld(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset starts a new run: fresh world, zero score, both modes at their
// initial values, the player at the centre and the initial batches spawned.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.spawner = NewSpawner(g.rng, g.cfg, g.catalog)
	g.world = newWorld()
	g.modes = Modes{}
	g.score = ScoreCounter{}
	g.enemyTimer = NewSpawnTimer(g.cfg.Spawn.Enemy.PeriodSeconds)
	g.starTimer = NewSpawnTimer(g.cfg.Spawn.Star.PeriodSeconds)
	g.out = Outbox{}
	g.tick = 0
	g.elapsed = 0
	g.started = true
	g.populated = false

	g.populate()
}

// populate spawns the player and the initial batches once the play area
// has a size.
func (g *Game) populate() {
	area := g.Area()
	if g.populated || area.X <= 0 || area.Y <= 0 {
		return
	}
	g.populated = true

	g.spawner.SpawnPlayer(g.world, area)
	for i := 0; i < g.cfg.Spawn.Enemy.Initial; i++ {
		g.spawner.Spawn(g.world, KindEnemy, PhaseInitial, area)
	}
	for i := 0; i < g.cfg.Spawn.Star.Initial; i++ {
		g.spawner.Spawn(g.world, KindStar, PhaseInitial, area)
	}
}

// Resize adopts a new terminal size without restarting the run.
// Actors outside the new area are pulled back by the next confinement.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.started {
		g.populate()
	}
}

// Area returns the play area size in world units.
func (g *Game) Area() core.Vec2 {
	rows := core.Max(g.runtime.ScreenH-g.cfg.Arena.HUDRows, 0)
	cols := core.Max(g.runtime.ScreenW, 0)
	return core.V(float64(cols)*g.cfg.Arena.CellWidth, float64(rows)*g.cfg.Arena.CellHeight)
}

// delta returns the simulated seconds for this tick. A frame without a
// measured time counts as one nominal tick; long stalls are capped.
func (g *Game) delta(in core.InputFrame) float64 {
	dt := in.Elapsed.Seconds()
	if dt <= 0 {
		dt = g.runtime.TickInterval().Seconds()
	}
	if g.cfg.Simulation.MaxDelta > 0 && dt > g.cfg.Simulation.MaxDelta {
		dt = g.cfg.Simulation.MaxDelta
	}
	return dt
}

// Step advances the simulation by one tick.
// Order: mode transitions, movement, confinement, collision, timers, spawns.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.started {
		g.Reset(g.runtime)
	}

	g.tick++
	ctx := &tickContext{
		modes:         &g.modes,
		score:         &g.score,
		area:          g.Area(),
		dt:            g.delta(in),
		rng:           g.rng,
		out:           &g.out,
		starRandomCue: g.cfg.Star.RandomBounceCue,
	}
	g.elapsed += ctx.dt

	g.modes.Apply()
	g.modes.handleInput(in, &g.out)

	// Nothing to simulate in a zero-sized window
	if ctx.area.X <= 0 || ctx.area.Y <= 0 {
		return core.StepResult{State: g.State()}
	}

	enemies := g.modes.Active()
	others := enemies || !g.cfg.Simulation.GateAllActors

	if others {
		MovePlayer(g.world.Player(), in, g.cfg.Player.Speed, ctx.dt)
		MoveActors(g.world.stars, g.cfg.Star.Speed, ctx.dt)
	}
	if enemies {
		MoveActors(g.world.enemies, g.cfg.Enemy.Speed, ctx.dt)
	}

	if others {
		confinePlayer(ctx, g.world.Player(), g.cfg.Player.Size)
		confineArena(ctx, g.world.stars, g.cfg.Star.Size)
	}
	if enemies {
		confineArena(ctx, g.world.enemies, g.cfg.Enemy.Size)
	}

	if others {
		// Stars first: the player may be removed by the enemy pass.
		collectStars(ctx, g.world, g.cfg.Player.Size, g.cfg.Star.Size)
		hitEnemies(ctx, g.world, g.cfg.Player.Size, g.cfg.Enemy.Size)
	}
	g.world.compact()

	if enemies && g.enemyTimer.Tick(ctx.dt) {
		g.spawnFromTimer(ctx, KindEnemy)
	}
	if others && g.starTimer.Tick(ctx.dt) {
		g.spawnFromTimer(ctx, KindStar)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) spawnFromTimer(ctx *tickContext, kind Kind) {
	id := g.spawner.Spawn(g.world, kind, PhaseTimer, ctx.area)
	if a, ok := g.world.Find(id); ok {
		ctx.out.Push(core.DebugNotice("Timer spawn", "kind", kind.String(), "x", a.Pos.X, "y", a.Pos.Y))
	}
}

// State returns the current game state.
// The run is over once the player has been destroyed; enemies and stars
// keep moving until the platform restarts the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.populated && g.world.Player() == nil,
		Paused:   g.modes.Run == RunPaused,
		Mode:     g.modes.Screen.String(),
	}
}

// Drain returns the events queued since the last drain and clears them.
func (g *Game) Drain() []core.Event {
	return g.out.Drain()
}

// World exposes the actor arenas for inspection.
func (g *Game) World() *World {
	return g.world
}

// Modes returns the current mode state.
func (g *Game) Modes() Modes {
	return g.modes
}
