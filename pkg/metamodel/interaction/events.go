package interaction

import (
	"sync"
)

// Event is posted after a mutator decorated with a posts event
// facet succeeded.
type Event struct {
	Name   string
	Member string
	Target any
	Args   []any
}

type EventSink interface {
	Post(e Event)
}

type EventFunc func(e Event)

func (f EventFunc) Post(e Event) {
	f(e)
}

// EventRecorder is an EventSink keeping all posted events.
type EventRecorder struct {
	lock   sync.Mutex
	events []Event
}

func (r *EventRecorder) Post(e Event) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, e)
}

func (r *EventRecorder) Events() []Event {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Event(nil), r.events...)
}
