package device

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/vorbis"

	"github.com/vovakirdan/starfall/internal/audio"
)

// bufferFormat is the format every cached buffer is stored in.
func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// decodeCue reads the cue's ogg file under dir into a buffer at rate.
func decodeCue(dir string, c audio.Cue, rate beep.SampleRate) (*beep.Buffer, error) {
	path := filepath.Join(dir, filepath.FromSlash(string(c)))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	// vorbis closes f together with the decoder
	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return buf, nil
}

// synthesize renders the cue's stand-in tone into a buffer.
func synthesize(c audio.Cue, rate beep.SampleRate) (*beep.Buffer, error) {
	t := toneFor(c)
	n := rate.N(t.duration)
	per := n / len(t.freqs)

	notes := make([]beep.Streamer, 0, len(t.freqs))
	for _, freq := range t.freqs {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("audio: synthesize %s: %w", c, err)
		}
		var note beep.Streamer = beep.Take(per, sine)
		if t.mix > 0 {
			under, err := generators.SineTone(rate, t.mix)
			if err != nil {
				return nil, fmt.Errorf("audio: synthesize %s: %w", c, err)
			}
			note = beep.Mix(newVolume(note, 0.6), newVolume(beep.Take(per, under), 0.4))
		}
		notes = append(notes, note)
	}

	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(decay(beep.Seq(notes...), per*len(notes)))
	return buf, nil
}

// decay fades a streamer linearly to silence over total samples.
func decay(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(pos)/float64(total)
			if gain < 0 {
				gain = 0
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// newVolume scales a streamer by a linear factor.
// math.Log2(0) is -Inf, so zero volume becomes silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
