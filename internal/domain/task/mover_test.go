package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/notify"
	"github.com/okrause/storyline/internal/repository"
	"github.com/okrause/storyline/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMover_IntoSprintKeepsPhaseAndStart(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TaskRepository{}
	recorder := &notify.Recorder{}
	mover := task.NewMover(repo, recorder, nil)

	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	stored := &task.Task{ID: 100, StoryID: 9, PhaseID: 21, TimeStart: &start}

	repo.On("Get", ctx, int64(100)).Return(stored, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

	moved, err := mover.Move(ctx, 100, 55, 7, 10)
	require.NoError(t, err)

	require.Equal(t, int64(55), moved.StoryID)
	require.Equal(t, int64(21), moved.PhaseID, "non-backlog move keeps the task's phase")
	require.NotNil(t, moved.TimeStart)
	require.True(t, moved.TimeStart.Equal(start), "non-backlog move keeps the task's start time")
}

func TestMover_IntoBacklogForcesFirstPhaseAndClearsStart(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TaskRepository{}
	recorder := &notify.Recorder{}
	mover := task.NewMover(repo, recorder, nil)

	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	stored := &task.Task{ID: 100, StoryID: 9, PhaseID: 21, TimeStart: &start}

	repo.On("Get", ctx, int64(100)).Return(stored, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

	moved, err := mover.Move(ctx, 100, 55, 0, 10)
	require.NoError(t, err)

	require.Equal(t, int64(55), moved.StoryID)
	require.Equal(t, int64(10), moved.PhaseID, "backlog move overrides the phase with the first phase")
	require.Nil(t, moved.TimeStart, "backlog move clears the start time")
}

func TestMover_EmitsDestroyThenCreateWithSameID(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TaskRepository{}
	recorder := &notify.Recorder{}
	mover := task.NewMover(repo, recorder, nil)

	repo.On("Get", ctx, int64(100)).Return(&task.Task{ID: 100, StoryID: 9, PhaseID: 21}, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

	_, err := mover.Move(ctx, 100, 55, 7, 10)
	require.NoError(t, err)

	events := recorder.ByEntity("task")
	require.Len(t, events, 2)
	require.Equal(t, notify.ActionDestroyed, events[0].Action)
	require.Equal(t, notify.ActionCreated, events[1].Action)
	require.Equal(t, events[0].EntityID, events[1].EntityID, "both halves of a move share the task id")
}

func TestMover_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TaskRepository{}
	mover := task.NewMover(repo, &notify.Recorder{}, nil)

	repo.On("Get", ctx, int64(100)).Return(nil, repository.ErrNotFound)

	_, err := mover.Move(ctx, 100, 55, 7, 10)
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestMover_SaveFailureEmitsNothing(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TaskRepository{}
	recorder := &notify.Recorder{}
	mover := task.NewMover(repo, recorder, nil)
	saveErr := errors.New("disk full")

	repo.On("Get", ctx, int64(100)).Return(&task.Task{ID: 100, StoryID: 9, PhaseID: 21}, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(saveErr)

	_, err := mover.Move(ctx, 100, 55, 7, 10)
	require.ErrorIs(t, err, saveErr)
	require.Empty(t, recorder.Events(), "a failed persist publishes no events")
}
