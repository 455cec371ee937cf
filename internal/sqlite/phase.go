package sqlite

import (
	"context"
	"fmt"

	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/repository"
)

// PhaseRepository implements repository.PhaseRepository for SQLite
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new PhaseRepository
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// ListOpen returns the project's not-done phases in workflow order
func (r *PhaseRepository) ListOpen(ctx context.Context, projectID int64) ([]phase.Phase, error) {
	query := `
		SELECT id, project_id, name, ord, is_done
		FROM phases
		WHERE project_id = ? AND is_done = 0
		ORDER BY ord ASC
	`

	filter := fmt.Sprintf("project_id=%d is_done=0", projectID)
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "phase", Filter: filter, Err: err}
	}
	defer rows.Close()

	var phases []phase.Phase
	for rows.Next() {
		var p phase.Phase
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Order, &p.IsDone); err != nil {
			return nil, &repository.DataAccessError{Entity: "phase", Filter: filter, Err: err}
		}
		phases = append(phases, p)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "phase", Filter: filter, Err: err}
	}

	return phases, nil
}

// PhaseDurationRepository implements repository.PhaseDurationRepository for SQLite
type PhaseDurationRepository struct {
	db *DB
}

// NewPhaseDurationRepository creates a new PhaseDurationRepository
func NewPhaseDurationRepository(db *DB) *PhaseDurationRepository {
	return &PhaseDurationRepository{db: db}
}

// ListForStory returns the story's ledger entries for the given phases
func (r *PhaseDurationRepository) ListForStory(ctx context.Context, storyID int64, phaseIDs []int64) ([]phase.DurationEntry, error) {
	if len(phaseIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, phase_id, story_id, duration
		FROM phase_durations
		WHERE story_id = ? AND phase_id IN (` + placeholders(len(phaseIDs)) + `)
		ORDER BY id ASC
	`

	args := make([]any, 0, len(phaseIDs)+1)
	args = append(args, storyID)
	for _, id := range phaseIDs {
		args = append(args, id)
	}

	filter := fmt.Sprintf("story_id=%d phase_ids=%v", storyID, phaseIDs)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "phase_duration", Filter: filter, Err: err}
	}
	defer rows.Close()

	var entries []phase.DurationEntry
	for rows.Next() {
		var e phase.DurationEntry
		if err := rows.Scan(&e.ID, &e.PhaseID, &e.StoryID, &e.Duration); err != nil {
			return nil, &repository.DataAccessError{Entity: "phase_duration", Filter: filter, Err: err}
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "phase_duration", Filter: filter, Err: err}
	}

	return entries, nil
}
