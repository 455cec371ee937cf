package mcp

import (
	"errors"
	"fmt"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors map
// to nil and pass through unchanged.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, story.ErrStoryNotFound):
		return &APIError{Code: "STORY_NOT_FOUND", Message: "story not found", RecoveryHint: "Check the story id"}
	case errors.Is(err, story.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid split request", RecoveryHint: "story_id and project_id must be positive, sprint_id non-negative"}
	case errors.Is(err, task.ErrTaskNotFound):
		return &APIError{Code: "TASK_NOT_FOUND", Message: "task not found", RecoveryHint: "Check the task id"}
	case errors.Is(err, access.ErrDenied):
		return &APIError{Code: "ACCESS_DENIED", Message: "no access to this project", RecoveryHint: "Ask a project owner for membership"}
	case errors.Is(err, repository.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: "entity not found"}
	default:
		return nil
	}
}

// toolError converts a domain error into the error returned to the
// client, preserving unknown errors as-is.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
