// Package contracts holds the centralized repository interface
// definitions. They live in a subpackage so that the repository
// package's error sentinels can be imported by the domain packages
// whose types these interfaces reference, without an import cycle.
package contracts

import (
	"context"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/notify"
)

// StoryRepository manages story persistence.
type StoryRepository interface {
	Get(ctx context.Context, id int64) (*story.Story, error)
	Create(ctx context.Context, st *story.Story) error
	Update(ctx context.Context, st *story.Story) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	Get(ctx context.Context, id int64) (*task.Task, error)
	List(ctx context.Context, opts task.ListOptions) ([]task.Task, error)
	Save(ctx context.Context, t *task.Task) error
}

// PhaseRepository manages workflow phases.
type PhaseRepository interface {
	ListOpen(ctx context.Context, projectID int64) ([]phase.Phase, error)
}

// PhaseDurationRepository reads the per-phase time ledger.
type PhaseDurationRepository interface {
	ListForStory(ctx context.Context, storyID int64, phaseIDs []int64) ([]phase.DurationEntry, error)
}

// UserRepository lists task assignees.
type UserRepository interface {
	List(ctx context.Context) ([]catalog.User, error)
}

// TypeRepository lists task types.
type TypeRepository interface {
	List(ctx context.Context) ([]catalog.TaskType, error)
}

// MilestoneRepository lists project milestones.
type MilestoneRepository interface {
	List(ctx context.Context, projectID int64) ([]catalog.Milestone, error)
}

// MembershipRepository resolves project roles.
type MembershipRepository interface {
	HasAccess(ctx context.Context, userID, projectID int64) (access.Role, error)
}

// ChangeLogRepository persists change events.
type ChangeLogRepository interface {
	Append(ctx context.Context, ev *notify.Event) error
}
