// Package audio defines the sound cues the game emits and the Player
// interface that plays them. Device-backed playback lives in audio/device.
package audio

// Cue identifies a one-shot sound by its asset path.
type Cue string

const (
	CueBounceLow  Cue = "audio/pluck_001.ogg"
	CueBounceHigh Cue = "audio/pluck_002.ogg"
	CueExplosion  Cue = "audio/explosionCrunch_000.ogg"
	CueCollect    Cue = "audio/laserLarge_000.ogg"
)

// Cues returns every cue the game can emit.
func Cues() []Cue {
	return []Cue{CueBounceLow, CueBounceHigh, CueExplosion, CueCollect}
}

// String returns the asset path.
func (c Cue) String() string {
	return string(c)
}
