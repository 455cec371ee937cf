package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/flow"
	"github.com/okrause/storyline/internal/repository"
)

// Service assembles story reports.
type Service struct {
	stories   StoryRepository
	tasks     TaskRepository
	phases    PhaseRepository
	durations DurationRepository
	users     UserRepository
	types     TypeRepository
	guard     access.Controller
	localizer Localizer
	logger    *slog.Logger
}

// NewService creates a new report service.
func NewService(
	stories StoryRepository,
	tasks TaskRepository,
	phases PhaseRepository,
	durations DurationRepository,
	users UserRepository,
	types TypeRepository,
	guard access.Controller,
	localizer Localizer,
	logger *slog.Logger,
) *Service {
	return &Service{
		stories:   stories,
		tasks:     tasks,
		phases:    phases,
		durations: durations,
		users:     users,
		types:     types,
		guard:     guard,
		localizer: localizer,
		logger:    logger,
	}
}

// Request identifies the requesting user and the story to report on.
type Request struct {
	UserID  int64
	StoryID int64
}

// Build assembles the report for one story: the story itself, its tasks
// resolved against users/types/phases, the per-phase duration breakdown
// with story-level totals, and the completion ratio. Any fetch failure
// aborts the whole read with that error.
func (s *Service) Build(ctx context.Context, req Request) (*Report, error) {
	st, err := s.stories.Get(ctx, req.StoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, story.ErrStoryNotFound
		}
		return nil, fmt.Errorf("loading story: %w", err)
	}

	role, err := s.guard.HasAccess(ctx, req.UserID, st.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("checking access: %w", err)
	}
	if role == access.RoleNone {
		return nil, access.ErrDenied
	}

	var grp flow.Group
	grp.Go("tasks", func(ctx context.Context) (any, error) {
		list, err := s.tasks.List(ctx, task.ListOptions{StoryID: st.ID})
		if err != nil {
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		return list, nil
	})
	grp.Go("users", func(ctx context.Context) (any, error) {
		list, err := s.users.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing users: %w", err)
		}
		return list, nil
	})
	grp.Go("types", func(ctx context.Context) (any, error) {
		list, err := s.types.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing types: %w", err)
		}
		return list, nil
	})
	grp.Go("phases", func(ctx context.Context) (any, error) {
		list, err := s.phases.ListOpen(ctx, st.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("listing phases: %w", err)
		}
		return list, nil
	})

	res, err := grp.Wait(ctx)
	if err != nil {
		return nil, err
	}

	tasks, _ := flow.Value[[]task.Task](res, "tasks")
	users, _ := flow.Value[[]catalog.User](res, "users")
	types, _ := flow.Value[[]catalog.TaskType](res, "types")
	phases, _ := flow.Value[[]phase.Phase](res, "phases")

	entries, err := s.durations.ListForStory(ctx, st.ID, phase.IDs(phases))
	if err != nil {
		return nil, fmt.Errorf("listing phase durations: %w", err)
	}
	annotatedPhases, totals := phase.Aggregate(phases, entries, st.ID)

	total, done, pct := task.Progress(tasks)

	return &Report{
		Story:     *st,
		Tasks:     s.annotate(tasks, users, types, phases),
		Users:     users,
		Types:     types,
		Phases:    annotatedPhases,
		Totals:    totals,
		TaskTotal: total,
		TaskDone:  done,
		Progress:  pct,
	}, nil
}

func (s *Service) annotate(tasks []task.Task, users []catalog.User, types []catalog.TaskType, phases []phase.Phase) []AnnotatedTask {
	userNames := make(map[int64]string, len(users))
	for _, u := range users {
		if _, ok := userNames[u.ID]; !ok {
			userNames[u.ID] = u.Name
		}
	}
	typeNames := make(map[int64]string, len(types))
	for _, tt := range types {
		if _, ok := typeNames[tt.ID]; !ok {
			typeNames[tt.ID] = tt.Name
		}
	}
	phaseNames := make(map[int64]string, len(phases))
	for _, p := range phases {
		if _, ok := phaseNames[p.ID]; !ok {
			phaseNames[p.ID] = p.Name
		}
	}

	out := make([]AnnotatedTask, len(tasks))
	for i, t := range tasks {
		out[i] = AnnotatedTask{
			Task:             t,
			UserName:         userNames[t.UserID],
			TypeName:         typeNames[t.TypeID],
			PhaseName:        phaseNames[t.PhaseID],
			TimeStartDisplay: s.localizer.Display(t.TimeStart),
			TimeEndDisplay:   s.localizer.Display(t.TimeEnd),
		}
	}
	return out
}
