package story

import (
	"errors"
	"fmt"
)

var (
	// ErrStoryNotFound indicates the story doesn't exist.
	ErrStoryNotFound = errors.New("story not found")
	// ErrInvalidInput indicates invalid split parameters.
	ErrInvalidInput = errors.New("invalid split input")
)

// WorkflowError wraps the failure that stopped a split run, naming the
// stage that produced it.
type WorkflowError struct {
	Stage string
	Err   error
}

func (e *WorkflowError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("split: %v", e.Err)
	}
	return fmt.Sprintf("split %s: %v", e.Stage, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}
