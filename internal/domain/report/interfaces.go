package report

import (
	"context"
	"time"

	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
)

// StoryRepository fetches the reported story.
type StoryRepository interface {
	Get(ctx context.Context, id int64) (*story.Story, error)
}

// TaskRepository lists the story's tasks.
type TaskRepository interface {
	List(ctx context.Context, opts task.ListOptions) ([]task.Task, error)
}

// PhaseRepository lists the project's not-done phases.
type PhaseRepository interface {
	ListOpen(ctx context.Context, projectID int64) ([]phase.Phase, error)
}

// DurationRepository reads the phase-duration ledger for a story.
type DurationRepository interface {
	ListForStory(ctx context.Context, storyID int64, phaseIDs []int64) ([]phase.DurationEntry, error)
}

// UserRepository lists assignees for task resolution.
type UserRepository interface {
	List(ctx context.Context) ([]catalog.User, error)
}

// TypeRepository lists task types for task resolution.
type TypeRepository interface {
	List(ctx context.Context) ([]catalog.TaskType, error)
}

// Localizer renders nullable timestamps for display.
type Localizer interface {
	Display(t *time.Time) string
}
