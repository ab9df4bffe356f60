package device

import (
	"time"

	"github.com/vovakirdan/starfall/internal/audio"
)

// tone describes the synthesized stand-in for a cue.
type tone struct {
	freqs    []float64 // played in sequence
	mix      float64   // frequency mixed under every note, 0 for none
	duration time.Duration
}

func toneFor(c audio.Cue) tone {
	switch c {
	case audio.CueBounceLow:
		return tone{freqs: []float64{330}, duration: 60 * time.Millisecond}
	case audio.CueBounceHigh:
		return tone{freqs: []float64{440}, duration: 60 * time.Millisecond}
	case audio.CueExplosion:
		return tone{freqs: []float64{110, 82}, mix: 55, duration: 400 * time.Millisecond}
	case audio.CueCollect:
		return tone{freqs: []float64{1320, 990, 660}, duration: 150 * time.Millisecond}
	default:
		return tone{freqs: []float64{220}, duration: 50 * time.Millisecond}
	}
}
