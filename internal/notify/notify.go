// Package notify carries change events from the workflows to whoever
// observes them. Delivery is fire-and-forget: publishers never block a
// workflow and never surface delivery failures to it.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Action names the kind of mutation an event describes.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDestroyed Action = "destroyed"
)

// Event is one observed mutation. There is no "moved" action: a task
// move is emitted as a destroy of the old identity followed by a create
// of the new state, and both events carry the same entity id. Consumers
// must treat such a pair as a single logical move.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	Payload   any       `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher delivers change events to observers, at most once from the
// caller's point of view.
type Publisher interface {
	Created(ctx context.Context, entity string, id int64, payload any)
	Updated(ctx context.Context, entity string, id int64, payload any)
	Destroyed(ctx context.Context, entity string, id int64)
}

func newEvent(action Action, entity string, id int64, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  id,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// LogPublisher writes change events to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher backed by the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Created(ctx context.Context, entity string, id int64, payload any) {
	p.log(ctx, newEvent(ActionCreated, entity, id, payload))
}

func (p *LogPublisher) Updated(ctx context.Context, entity string, id int64, payload any) {
	p.log(ctx, newEvent(ActionUpdated, entity, id, payload))
}

func (p *LogPublisher) Destroyed(ctx context.Context, entity string, id int64) {
	p.log(ctx, newEvent(ActionDestroyed, entity, id, nil))
}

func (p *LogPublisher) log(ctx context.Context, ev Event) {
	if p.logger == nil {
		return
	}
	p.logger.InfoContext(ctx, "change event",
		"event_id", ev.ID,
		"action", string(ev.Action),
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	)
}

// Multi fans each event out to several publishers.
type Multi []Publisher

func (m Multi) Created(ctx context.Context, entity string, id int64, payload any) {
	for _, p := range m {
		p.Created(ctx, entity, id, payload)
	}
}

func (m Multi) Updated(ctx context.Context, entity string, id int64, payload any) {
	for _, p := range m {
		p.Updated(ctx, entity, id, payload)
	}
}

func (m Multi) Destroyed(ctx context.Context, entity string, id int64) {
	for _, p := range m {
		p.Destroyed(ctx, entity, id)
	}
}
