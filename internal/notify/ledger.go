package notify

import (
	"context"
	"log/slog"
)

// Appender persists change events.
type Appender interface {
	Append(ctx context.Context, ev *Event) error
}

// Ledger records change events through an Appender. A failed append is
// logged and dropped; the mutation that produced the event has already
// happened and must not be blocked.
type Ledger struct {
	appender Appender
	logger   *slog.Logger
}

// NewLedger creates a ledger-backed publisher.
func NewLedger(appender Appender, logger *slog.Logger) *Ledger {
	return &Ledger{appender: appender, logger: logger}
}

func (l *Ledger) Created(ctx context.Context, entity string, id int64, payload any) {
	l.append(ctx, newEvent(ActionCreated, entity, id, payload))
}

func (l *Ledger) Updated(ctx context.Context, entity string, id int64, payload any) {
	l.append(ctx, newEvent(ActionUpdated, entity, id, payload))
}

func (l *Ledger) Destroyed(ctx context.Context, entity string, id int64) {
	l.append(ctx, newEvent(ActionDestroyed, entity, id, nil))
}

func (l *Ledger) append(ctx context.Context, ev Event) {
	if err := l.appender.Append(ctx, &ev); err != nil {
		if l.logger != nil {
			l.logger.WarnContext(ctx, "change event dropped",
				"event_id", ev.ID,
				"action", string(ev.Action),
				"entity", ev.Entity,
				"entity_id", ev.EntityID,
				"error", err,
			)
		}
	}
}
