package story

import (
	"context"

	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/task"
)

// Repository provides persistence for stories. Create assigns the new
// story's identity.
type Repository interface {
	Get(ctx context.Context, id int64) (*Story, error)
	Create(ctx context.Context, st *Story) error
	Update(ctx context.Context, st *Story) error
}

// PhaseRepository lists a project's not-done phases.
type PhaseRepository interface {
	ListOpen(ctx context.Context, projectID int64) ([]phase.Phase, error)
}

// TaskRepository lists tasks by story and phase set.
type TaskRepository interface {
	List(ctx context.Context, opts task.ListOptions) ([]task.Task, error)
}

// TaskMover relocates one task onto a destination story.
type TaskMover interface {
	Move(ctx context.Context, taskID, destStoryID, destSprintID, firstPhaseID int64) (*task.Task, error)
}
