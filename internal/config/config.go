// Package config provides YAML-based configuration loading for Starfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// StarfallConfig contains all configuration for the Starfall game.
type StarfallConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     ActorConfig      `yaml:"player"`
	Enemy      ActorConfig      `yaml:"enemy"`
	Star       StarConfig       `yaml:"star"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Simulation SimulationConfig `yaml:"simulation"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ArenaConfig maps terminal cells to world units.
// The play area is ScreenW*CellWidth by (ScreenH-HUDRows)*CellHeight.
type ArenaConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`
}

// ActorConfig defines motion and size of one actor kind, in world units.
type ActorConfig struct {
	Speed float64 `yaml:"speed"` // units per second
	Size  float64 `yaml:"size"`  // diameter
}

// StarConfig extends ActorConfig with star-only switches.
type StarConfig struct {
	ActorConfig `yaml:",inline"`
	// NormalizeDirection makes stars move at exactly Speed.
	// Off by default: star directions keep their raw random length.
	NormalizeDirection bool `yaml:"normalize_direction"`
	// RandomBounceCue lets star bounces pick between both pluck cues.
	RandomBounceCue bool `yaml:"random_bounce_cue"`
}

// SpawnConfig defines spawning for the timer-driven kinds.
type SpawnConfig struct {
	// OffsetThreshold is the y above which a fresh spawn is shifted down.
	OffsetThreshold float64   `yaml:"offset_threshold"`
	Enemy           SpawnKind `yaml:"enemy"`
	Star            SpawnKind `yaml:"star"`
}

// SpawnKind defines initial batch, timer period and offset correction for one kind.
type SpawnKind struct {
	Initial       int     `yaml:"initial"`
	PeriodSeconds float64 `yaml:"period_seconds"`
	InitialOffset float64 `yaml:"initial_offset"`
	TimerOffset   float64 `yaml:"timer_offset"`
}

// SimulationConfig defines tick-level behavior.
type SimulationConfig struct {
	// GateAllActors pauses Player and Star cycles together with enemies.
	GateAllActors bool `yaml:"gate_all_actors"`
	// HoldMS is how long a movement key press counts as held.
	HoldMS int `yaml:"hold_ms"`
	// MaxDelta caps the measured frame time, in seconds.
	MaxDelta float64 `yaml:"max_delta"`
}

// AudioConfig defines the cue player.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	AssetDir   string  `yaml:"asset_dir"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0..1
}

// Validate checks that sizes, speeds and periods make sense.
func (c StarfallConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Arena.CellWidth > 0, "arena.cell_width must be positive")
	check(c.Arena.CellHeight > 0, "arena.cell_height must be positive")
	check(c.Arena.HUDRows >= 0, "arena.hud_rows must not be negative")

	check(c.Player.Size > 0, "player.size must be positive")
	check(c.Player.Speed >= 0, "player.speed must not be negative")
	check(c.Enemy.Size > 0, "enemy.size must be positive")
	check(c.Enemy.Speed >= 0, "enemy.speed must not be negative")
	check(c.Star.Size > 0, "star.size must be positive")
	check(c.Star.Speed >= 0, "star.speed must not be negative")

	check(c.Spawn.Enemy.Initial >= 0, "spawn.enemy.initial must not be negative")
	check(c.Spawn.Enemy.PeriodSeconds > 0, "spawn.enemy.period_seconds must be positive")
	check(c.Spawn.Star.Initial >= 0, "spawn.star.initial must not be negative")
	check(c.Spawn.Star.PeriodSeconds > 0, "spawn.star.period_seconds must be positive")

	check(c.Simulation.HoldMS > 0, "simulation.hold_ms must be positive")
	check(c.Simulation.MaxDelta > 0, "simulation.max_delta must be positive")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1]")
	if c.Audio.Enabled {
		check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalid, problems)
}
