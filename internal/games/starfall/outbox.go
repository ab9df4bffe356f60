package starfall

import "github.com/vovakirdan/starfall/internal/core"

// Outbox collects events emitted during a tick until the platform drains them.
type Outbox struct {
	events []core.Event
}

// Push queues an event.
func (o *Outbox) Push(e core.Event) {
	o.events = append(o.events, e)
}

// Len returns the number of queued events.
func (o *Outbox) Len() int {
	return len(o.events)
}

// Drain returns the queued events in emission order and clears the outbox.
func (o *Outbox) Drain() []core.Event {
	if len(o.events) == 0 {
		return nil
	}
	out := o.events
	o.events = nil
	return out
}
