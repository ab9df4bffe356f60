package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
)

// EventSink executes the side effects a game queued during a tick:
// notices go to the logger, cues to the audio player.
type EventSink struct {
	logger *log.Logger
	player audio.Player
}

// NewEventSink creates a sink. Nil collaborators are replaced with a
// discarding logger and a silent player.
func NewEventSink(logger *log.Logger, player audio.Player) *EventSink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == nil {
		player = audio.Nop{}
	}
	return &EventSink{logger: logger, player: player}
}

// Dispatch executes events in order. It reports the final score when the
// batch contains a game over.
func (s *EventSink) Dispatch(events []core.Event) (finalScore int, over bool) {
	for _, e := range events {
		switch e.Kind {
		case core.EventNotice:
			if e.Debug {
				s.logger.Debug(e.Message, e.Fields...)
			} else {
				s.logger.Info(e.Message, e.Fields...)
			}
		case core.EventCue:
			s.player.Play(audio.Cue(e.Cue))
		case core.EventGameOver:
			s.logger.Info("Final score", "score", e.Score)
			finalScore, over = e.Score, true
		}
	}
	return finalScore, over
}

// Logger returns the sink's logger.
func (s *EventSink) Logger() *log.Logger {
	return s.logger
}
