// Package flow provides the two coordination shapes the workflows use:
// a named fan-out/fan-in group and an ordered pipeline. The dependency
// shape of the callers never exceeds two levels of nesting, so there is
// no general task graph here.
package flow

import (
	"context"
	"fmt"
	"sync"
)

// Job is one named unit of work within a parallel group.
type Job func(ctx context.Context) (any, error)

// Results holds one slot per job, keyed by the name given to Go.
type Results map[string]any

// Value returns the named result cast to T.
func Value[T any](res Results, name string) (T, bool) {
	v, ok := res[name].(T)
	return v, ok
}

// StageError reports which job or pipeline stage produced a failure.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Group runs named jobs concurrently and joins on all of them. There is
// no cancellation: a job already in flight keeps running after a
// sibling fails, its result simply goes unused.
type Group struct {
	names []string
	jobs  []Job
}

// Go registers a named job. Registration order decides which error wins
// when several jobs fail.
func (g *Group) Go(name string, job Job) {
	g.names = append(g.names, name)
	g.jobs = append(g.jobs, job)
}

// Wait blocks until every registered job has finished. Each job writes
// exactly one result slot. If any job failed, Wait returns the error of
// the earliest-registered failing job and callers must not rely on the
// partial results being present.
func (g *Group) Wait(ctx context.Context) (Results, error) {
	results := make([]any, len(g.jobs))
	errs := make([]error, len(g.jobs))

	var wg sync.WaitGroup
	for i, job := range g.jobs {
		wg.Add(1)
		go func(slot int, run Job) {
			defer wg.Done()
			results[slot], errs[slot] = run(ctx)
		}(i, job)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &StageError{Stage: g.names[i], Err: err}
		}
	}

	out := make(Results, len(g.jobs))
	for i, name := range g.names {
		out[name] = results[i]
	}
	return out, nil
}

// Stage is one step of a sequential pipeline. Each stage receives the
// state produced by its predecessor and returns the next state.
type Stage[S any] struct {
	Name string
	Run  func(ctx context.Context, state S) (S, error)
}

// Sequential runs stages strictly in order. The first failing stage
// stops the pipeline; remaining stages are skipped and the failure is
// returned with the stage name attached. On success the final stage's
// output is returned.
func Sequential[S any](ctx context.Context, initial S, stages ...Stage[S]) (S, error) {
	state := initial
	for _, stage := range stages {
		next, err := stage.Run(ctx, state)
		if err != nil {
			return state, &StageError{Stage: stage.Name, Err: err}
		}
		state = next
	}
	return state, nil
}
