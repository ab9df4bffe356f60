package core

// EventKind classifies an outbox event.
type EventKind int

const (
	// EventNotice is an informational message for the log.
	EventNotice EventKind = iota
	// EventCue asks the platform to play a sound cue.
	EventCue
	// EventGameOver reports the end of a run with its final score.
	EventGameOver
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventNotice:
		return "notice"
	case EventCue:
		return "cue"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a side effect produced by a simulation tick.
// Games queue events while stepping; the platform drains and executes them.
type Event struct {
	Kind    EventKind
	Message string // notices
	Debug   bool   // notices below the default log level
	Fields  []any  // alternating key/value pairs for structured logging
	Cue     string // asset path of the cue, for EventCue
	Score   int    // final score, for EventGameOver
}

// Notice creates an informational event.
func Notice(msg string, keyvals ...any) Event {
	return Event{Kind: EventNotice, Message: msg, Fields: keyvals}
}

// DebugNotice creates a debug-level informational event.
func DebugNotice(msg string, keyvals ...any) Event {
	return Event{Kind: EventNotice, Message: msg, Debug: true, Fields: keyvals}
}

// CueEvent creates a sound cue event.
func CueEvent(path string) Event {
	return Event{Kind: EventCue, Cue: path}
}

// GameOverEvent creates a game-over event carrying the final score.
func GameOverEvent(score int) Event {
	return Event{Kind: EventGameOver, Score: score}
}
