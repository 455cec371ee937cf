package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/flow"
	"github.com/okrause/storyline/internal/notify"
	"github.com/okrause/storyline/internal/repository"
)

// Service handles story split operations.
type Service struct {
	stories  Repository
	phases   PhaseRepository
	tasks    TaskRepository
	mover    TaskMover
	notifier notify.Publisher
	logger   *slog.Logger
}

// NewService creates a new story service.
func NewService(
	stories Repository,
	phases PhaseRepository,
	tasks TaskRepository,
	mover TaskMover,
	notifier notify.Publisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		stories:  stories,
		phases:   phases,
		tasks:    tasks,
		mover:    mover,
		notifier: notifier,
		logger:   logger,
	}
}

// SplitRequest defines split inputs. SprintID 0 targets the project
// backlog.
type SplitRequest struct {
	SourceStoryID int64
	SprintID      int64
	ProjectID     int64
}

// SplitResult is the aggregate outcome of a split run.
type SplitResult struct {
	OldStory   *Story      `json:"old_story"`
	NewStory   *Story      `json:"new_story"`
	MovedTasks []task.Task `json:"moved_tasks"`
	MovedCount int         `json:"moved_count"`
}

// splitState is the workflow state threaded through the pipeline. Each
// stage returns a new value rather than mutating shared state.
type splitState struct {
	source *Story
	dest   *Story
	phases []phase.Phase
	moved  []task.Task
}

// Split creates a new story linked to the source, relocates the
// source's tasks in the project's open phases onto it, closes the
// source, and opens the destination.
//
// There is no compensating transaction: if the destination story is
// created but a later stage fails, the new story stays persisted and
// its creation stays notified while the run reports the error.
// Concurrent splits of the same story are not guarded against.
func (s *Service) Split(ctx context.Context, req SplitRequest) (*SplitResult, error) {
	if req.SourceStoryID <= 0 || req.ProjectID <= 0 || req.SprintID < 0 {
		return nil, ErrInvalidInput
	}

	state, err := flow.Sequential(ctx, splitState{},
		flow.Stage[splitState]{Name: "fetch_source", Run: s.fetchSource(req)},
		flow.Stage[splitState]{Name: "create_destination", Run: s.createDestination(req)},
		flow.Stage[splitState]{Name: "reassign_tasks", Run: s.reassignTasks},
		flow.Stage[splitState]{Name: "finalize", Run: s.finalize},
	)
	if err != nil {
		return nil, wrapWorkflow(err)
	}

	return &SplitResult{
		OldStory:   state.source,
		NewStory:   state.dest,
		MovedTasks: state.moved,
		MovedCount: len(state.moved),
	}, nil
}

// Get returns one story by id.
func (s *Service) Get(ctx context.Context, id int64) (*Story, error) {
	st, err := s.stories.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, fmt.Errorf("loading story: %w", err)
	}
	return st, nil
}

func (s *Service) fetchSource(req SplitRequest) func(context.Context, splitState) (splitState, error) {
	return func(ctx context.Context, state splitState) (splitState, error) {
		src, err := s.stories.Get(ctx, req.SourceStoryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return state, ErrStoryNotFound
			}
			return state, fmt.Errorf("loading story: %w", err)
		}
		state.source = src
		return state, nil
	}
}

// createDestination persists the clone and lists the project's open
// phases concurrently. The two jobs are independent; when the phase
// listing fails after the create succeeded, the created story remains.
func (s *Service) createDestination(req SplitRequest) func(context.Context, splitState) (splitState, error) {
	return func(ctx context.Context, state splitState) (splitState, error) {
		dest := state.source.CloneForSplit(req.SprintID)

		var grp flow.Group
		grp.Go("create_story", func(ctx context.Context) (any, error) {
			if err := s.stories.Create(ctx, dest); err != nil {
				return nil, fmt.Errorf("creating story: %w", err)
			}
			s.notifier.Created(ctx, "story", dest.ID, dest)
			return dest, nil
		})
		grp.Go("open_phases", func(ctx context.Context) (any, error) {
			phases, err := s.phases.ListOpen(ctx, req.ProjectID)
			if err != nil {
				return nil, fmt.Errorf("listing open phases: %w", err)
			}
			return phases, nil
		})

		res, err := grp.Wait(ctx)
		if err != nil {
			return state, err
		}

		state.dest = dest
		state.phases, _ = flow.Value[[]phase.Phase](res, "open_phases")
		return state, nil
	}
}

// reassignTasks moves every source task sitting in an open phase onto
// the destination story. With no open phases there is nothing to move.
func (s *Service) reassignTasks(ctx context.Context, state splitState) (splitState, error) {
	if len(state.phases) == 0 {
		return state, nil
	}

	first, _ := phase.First(state.phases)

	tasks, err := s.tasks.List(ctx, task.ListOptions{
		StoryID:  state.source.ID,
		PhaseIDs: phase.IDs(state.phases),
	})
	if err != nil {
		return state, fmt.Errorf("listing tasks: %w", err)
	}

	moved := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		movedTask, err := s.mover.Move(ctx, t.ID, state.dest.ID, state.dest.SprintID, first.ID)
		if err != nil {
			return state, fmt.Errorf("moving task %d: %w", t.ID, err)
		}
		moved = append(moved, *movedTask)
	}

	state.moved = moved
	return state, nil
}

// finalize closes the source story and opens the destination, again as
// two concurrent jobs. The destination's start time becomes the latest
// start among the moved tasks, or stays unset when none carry one.
func (s *Service) finalize(ctx context.Context, state splitState) (splitState, error) {
	now := time.Now()

	var grp flow.Group
	grp.Go("close_source", func(ctx context.Context) (any, error) {
		src := state.source
		src.IsDone = true
		src.TimeEnd = &now
		if err := s.stories.Update(ctx, src); err != nil {
			return nil, fmt.Errorf("updating source story: %w", err)
		}
		s.notifier.Updated(ctx, "story", src.ID, src)
		return src, nil
	})
	grp.Go("open_destination", func(ctx context.Context) (any, error) {
		dest := state.dest
		dest.IsDone = false
		dest.TimeEnd = nil
		dest.TimeStart = latestStart(state.moved)
		if err := s.stories.Update(ctx, dest); err != nil {
			return nil, fmt.Errorf("updating destination story: %w", err)
		}
		s.notifier.Updated(ctx, "story", dest.ID, dest)
		return dest, nil
	})

	if _, err := grp.Wait(ctx); err != nil {
		return state, err
	}
	return state, nil
}

func latestStart(tasks []task.Task) *time.Time {
	var latest *time.Time
	for _, t := range tasks {
		if t.TimeStart == nil {
			continue
		}
		if latest == nil || t.TimeStart.After(*latest) {
			ts := *t.TimeStart
			latest = &ts
		}
	}
	return latest
}

func wrapWorkflow(err error) error {
	var stageErr *flow.StageError
	if errors.As(err, &stageErr) {
		return &WorkflowError{Stage: stageErr.Stage, Err: stageErr.Err}
	}
	return &WorkflowError{Err: err}
}
