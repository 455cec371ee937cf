package notify

import (
	"context"
	"sync"
)

// Recorder captures events in memory, in publication order. Tests use
// it to assert on notification protocols such as the destroy-then-
// create pair a task move produces.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Created(ctx context.Context, entity string, id int64, payload any) {
	r.record(newEvent(ActionCreated, entity, id, payload))
}

func (r *Recorder) Updated(ctx context.Context, entity string, id int64, payload any) {
	r.record(newEvent(ActionUpdated, entity, id, payload))
}

func (r *Recorder) Destroyed(ctx context.Context, entity string, id int64) {
	r.record(newEvent(ActionDestroyed, entity, id, nil))
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByEntity returns the recorded events for one entity kind.
func (r *Recorder) ByEntity(entity string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Entity == entity {
			out = append(out, ev)
		}
	}
	return out
}
