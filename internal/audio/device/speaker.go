// Package device plays audio cues on the system sound device.
//
// Each cue is decoded from its ogg file under the configured asset directory
// when present, and synthesized as a short tone otherwise, so the game always
// has audible feedback.
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/config"
)

// Speaker plays cues through the system audio device. It implements audio.Player.
// Cue buffers are decoded or synthesized once and cached.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	assetDir    string
	mixer       *beep.Mixer
	cache       map[audio.Cue]*beep.Buffer
	logger      *log.Logger
	initialized bool
}

// NewSpeaker creates a speaker player from the audio configuration.
// Call Init before Play; until then cues are dropped.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{
		rate:     beep.SampleRate(cfg.SampleRate),
		volume:   cfg.Volume,
		assetDir: cfg.AssetDir,
		mixer:    &beep.Mixer{},
		cache:    make(map[audio.Cue]*beep.Buffer),
		logger:   logger,
	}
}

// Init opens the audio device and preloads every cue.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true

	for _, c := range audio.Cues() {
		if _, err := s.bufferLocked(c); err != nil {
			s.logger.Warn("audio cue unavailable", "cue", c, "err", err)
		}
	}
	return nil
}

// Play mixes the cue into the output without blocking.
func (s *Speaker) Play(c audio.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	buf, err := s.bufferLocked(c)
	if err != nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), s.volume))
	speaker.Unlock()
}

// Close silences all cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// bufferLocked returns the cached buffer for c, loading it on first use.
// The ogg asset wins; a missing file falls back to a synthesized tone.
func (s *Speaker) bufferLocked(c audio.Cue) (*beep.Buffer, error) {
	if buf, ok := s.cache[c]; ok {
		return buf, nil
	}

	buf, err := loadCue(s.assetDir, c, s.rate)
	if err != nil {
		return nil, err
	}
	s.cache[c] = buf
	return buf, nil
}

// loadCue decodes the cue from dir, synthesizing it when no file is usable.
func loadCue(dir string, c audio.Cue, rate beep.SampleRate) (*beep.Buffer, error) {
	buf, decodeErr := decodeCue(dir, c, rate)
	if decodeErr == nil {
		return buf, nil
	}
	buf, synthErr := synthesize(c, rate)
	if synthErr != nil {
		return nil, errors.Join(decodeErr, synthErr)
	}
	return buf, nil
}
