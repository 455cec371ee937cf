package task

import "context"

// Repository provides persistence for tasks.
type Repository interface {
	Get(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context, opts ListOptions) ([]Task, error)
	Save(ctx context.Context, t *Task) error
}
