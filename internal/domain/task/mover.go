package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/okrause/storyline/internal/notify"
	"github.com/okrause/storyline/internal/repository"
)

// Mover relocates a single task onto another story.
type Mover struct {
	tasks    Repository
	notifier notify.Publisher
	logger   *slog.Logger
}

// NewMover creates a task mover.
func NewMover(tasks Repository, notifier notify.Publisher, logger *slog.Logger) *Mover {
	return &Mover{tasks: tasks, notifier: notifier, logger: logger}
}

// Move reassigns one task to the destination story and persists it.
// Moving into the backlog (sprint id 0) clears the start time and drops
// the task into the given first phase; any other destination keeps the
// task's own phase and start time, changing only the owning story.
//
// The task is re-fetched immediately before mutating, which narrows but
// does not close the window for concurrent edits. On success observers
// receive a destroy for the old identity followed by a create for the
// new state; both carry the same task id and form one logical move.
func (m *Mover) Move(ctx context.Context, taskID, destStoryID, destSprintID, firstPhaseID int64) (*Task, error) {
	t, err := m.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}

	targetPhaseID := t.PhaseID
	targetStart := t.TimeStart
	if destSprintID == 0 {
		targetPhaseID = firstPhaseID
		targetStart = nil
	}

	t.StoryID = destStoryID
	t.PhaseID = targetPhaseID
	t.TimeStart = targetStart

	if err := m.tasks.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}

	m.notifier.Destroyed(ctx, "task", t.ID)
	m.notifier.Created(ctx, "task", t.ID, t)

	return t, nil
}
