package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultStarfallYAML))
	copy(out, defaultStarfallYAML)
	return out
}

// DefaultStarfallConfig returns the default Starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Arena: ArenaConfig{
			CellWidth:  10,
			CellHeight: 25,
			HUDRows:    2,
		},
		Player: ActorConfig{
			Speed: 500,
			Size:  64,
		},
		Enemy: ActorConfig{
			Speed: 200,
			Size:  64,
		},
		Star: StarConfig{
			ActorConfig: ActorConfig{
				Speed: 80,
				Size:  64,
			},
		},
		Spawn: SpawnConfig{
			OffsetThreshold: 606.5265,
			Enemy: SpawnKind{
				Initial:       1,
				PeriodSeconds: 100,
				InitialOffset: 206.5265,
				TimerOffset:   406.5265,
			},
			Star: SpawnKind{
				Initial:       1,
				PeriodSeconds: 100,
				InitialOffset: 406.5265,
				TimerOffset:   0,
			},
		},
		Simulation: SimulationConfig{
			GateAllActors: false,
			HoldMS:        150,
			MaxDelta:      0.1,
		},
		Audio: AudioConfig{
			Enabled:    true,
			AssetDir:   "assets",
			SampleRate: 44100,
			Volume:     0.6,
		},
	}
}
