package mocks

import (
	"context"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/notify"
	"github.com/stretchr/testify/mock"
)

// StoryRepository is a mock for repository.StoryRepository.
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) Get(ctx context.Context, id int64) (*story.Story, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*story.Story); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoryRepository) Create(ctx context.Context, st *story.Story) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StoryRepository) Update(ctx context.Context, st *story.Story) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

// TaskRepository is a mock for repository.TaskRepository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Get(ctx context.Context, id int64) (*task.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, opts task.ListOptions) ([]task.Task, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// PhaseRepository is a mock for repository.PhaseRepository.
type PhaseRepository struct {
	mock.Mock
}

func (m *PhaseRepository) ListOpen(ctx context.Context, projectID int64) ([]phase.Phase, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]phase.Phase); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PhaseDurationRepository is a mock for repository.PhaseDurationRepository.
type PhaseDurationRepository struct {
	mock.Mock
}

func (m *PhaseDurationRepository) ListForStory(ctx context.Context, storyID int64, phaseIDs []int64) ([]phase.DurationEntry, error) {
	args := m.Called(ctx, storyID, phaseIDs)
	if list, ok := args.Get(0).([]phase.DurationEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) List(ctx context.Context) ([]catalog.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TypeRepository is a mock for repository.TypeRepository.
type TypeRepository struct {
	mock.Mock
}

func (m *TypeRepository) List(ctx context.Context) ([]catalog.TaskType, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.TaskType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MilestoneRepository is a mock for repository.MilestoneRepository.
type MilestoneRepository struct {
	mock.Mock
}

func (m *MilestoneRepository) List(ctx context.Context, projectID int64) ([]catalog.Milestone, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]catalog.Milestone); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MembershipRepository is a mock for repository.MembershipRepository.
type MembershipRepository struct {
	mock.Mock
}

func (m *MembershipRepository) HasAccess(ctx context.Context, userID, projectID int64) (access.Role, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Get(0).(access.Role), args.Error(1)
}

// ChangeLogRepository is a mock for repository.ChangeLogRepository.
type ChangeLogRepository struct {
	mock.Mock
}

func (m *ChangeLogRepository) Append(ctx context.Context, ev *notify.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

// TaskMover is a mock for story.TaskMover.
type TaskMover struct {
	mock.Mock
}

func (m *TaskMover) Move(ctx context.Context, taskID, destStoryID, destSprintID, firstPhaseID int64) (*task.Task, error) {
	args := m.Called(ctx, taskID, destStoryID, destSprintID, firstPhaseID)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
