package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/okrause/storyline/internal/notify"
	"github.com/okrause/storyline/internal/repository"
)

// ChangeLogRepository implements repository.ChangeLogRepository for SQLite
type ChangeLogRepository struct {
	db *DB
}

// NewChangeLogRepository creates a new ChangeLogRepository
func NewChangeLogRepository(db *DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Append records one change event in the ledger
func (r *ChangeLogRepository) Append(ctx context.Context, ev *notify.Event) error {
	var payload any
	if ev.Payload != nil {
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode event payload: %w", err)
		}
		payload = string(data)
	}

	query := `
		INSERT INTO change_log (event_id, action, entity, entity_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID,
		string(ev.Action),
		ev.Entity,
		ev.EntityID,
		payload,
		ev.CreatedAt,
	)
	if err != nil {
		return &repository.PersistenceError{Entity: "change_log", Err: err}
	}

	return nil
}
