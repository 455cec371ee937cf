package flow_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okrause/storyline/internal/flow"
	"github.com/stretchr/testify/require"
)

func TestGroup_WaitCollectsNamedResults(t *testing.T) {
	ctx := context.Background()

	var grp flow.Group
	grp.Go("count", func(ctx context.Context) (any, error) {
		return 42, nil
	})
	grp.Go("label", func(ctx context.Context) (any, error) {
		return "ready", nil
	})

	res, err := grp.Wait(ctx)
	require.NoError(t, err)

	count, ok := flow.Value[int](res, "count")
	require.True(t, ok)
	require.Equal(t, 42, count)

	label, ok := flow.Value[string](res, "label")
	require.True(t, ok)
	require.Equal(t, "ready", label)
}

func TestGroup_FirstErrorByRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	errSlow := errors.New("slow failure")
	errFast := errors.New("fast failure")

	// The first-registered job fails last in wall-clock time; its error
	// must still win.
	var grp flow.Group
	grp.Go("slow", func(ctx context.Context) (any, error) {
		time.Sleep(30 * time.Millisecond)
		return nil, errSlow
	})
	grp.Go("fast", func(ctx context.Context) (any, error) {
		return nil, errFast
	})

	res, err := grp.Wait(ctx)
	require.Nil(t, res)
	require.ErrorIs(t, err, errSlow)

	var stageErr *flow.StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "slow", stageErr.Stage)
}

func TestGroup_SiblingsRunToCompletionAfterFailure(t *testing.T) {
	ctx := context.Background()
	var sideEffect atomic.Bool

	var grp flow.Group
	grp.Go("failing", func(ctx context.Context) (any, error) {
		return nil, errors.New("boom")
	})
	grp.Go("survivor", func(ctx context.Context) (any, error) {
		time.Sleep(20 * time.Millisecond)
		sideEffect.Store(true)
		return "done", nil
	})

	_, err := grp.Wait(ctx)
	require.Error(t, err)
	require.True(t, sideEffect.Load(), "in-flight sibling must finish and apply its side effect")
}

func TestGroup_EmptyGroup(t *testing.T) {
	var grp flow.Group
	res, err := grp.Wait(context.Background())
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestSequential_ThreadsStateThroughStages(t *testing.T) {
	ctx := context.Background()

	out, err := flow.Sequential(ctx, 1,
		flow.Stage[int]{Name: "double", Run: func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		}},
		flow.Stage[int]{Name: "add_three", Run: func(ctx context.Context, n int) (int, error) {
			return n + 3, nil
		}},
	)
	require.NoError(t, err)
	require.Equal(t, 5, out)
}

func TestSequential_ShortCircuitsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	errStage := errors.New("stage failed")
	ran := false

	_, err := flow.Sequential(ctx, 0,
		flow.Stage[int]{Name: "bad", Run: func(ctx context.Context, n int) (int, error) {
			return 0, errStage
		}},
		flow.Stage[int]{Name: "never", Run: func(ctx context.Context, n int) (int, error) {
			ran = true
			return n, nil
		}},
	)
	require.ErrorIs(t, err, errStage)
	require.False(t, ran, "stages after a failure must be skipped")

	var stageErr *flow.StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "bad", stageErr.Stage)
}
