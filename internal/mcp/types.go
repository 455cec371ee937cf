package mcp

import (
	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/task"
)

// SplitStoryInput carries the split_story tool arguments.
type SplitStoryInput struct {
	StoryID   int64 `json:"story_id" jsonschema:"id of the story to split"`
	SprintID  int64 `json:"sprint_id" jsonschema:"destination sprint, 0 for the project backlog"`
	ProjectID int64 `json:"project_id" jsonschema:"project the story belongs to"`
}

// GetStoryInput carries the get_story tool arguments.
type GetStoryInput struct {
	StoryID int64 `json:"story_id" jsonschema:"id of the story"`
}

// GetStoryReportInput carries the get_story_report tool arguments.
type GetStoryReportInput struct {
	StoryID int64 `json:"story_id" jsonschema:"id of the story to report on"`
}

// ListTasksInput carries the list_tasks tool arguments.
type ListTasksInput struct {
	StoryID  int64   `json:"story_id,omitempty" jsonschema:"filter by owning story"`
	PhaseIDs []int64 `json:"phase_ids,omitempty" jsonschema:"filter by phase"`
}

// ListTasksResult is the list_tasks tool output.
type ListTasksResult struct {
	Tasks []task.Task `json:"tasks"`
	Total int         `json:"total"`
}

// ListMilestonesInput carries the list_milestones tool arguments.
type ListMilestonesInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"project to list milestones for"`
}

// ListMilestonesResult is the list_milestones tool output.
type ListMilestonesResult struct {
	Milestones []catalog.Milestone `json:"milestones"`
	Total      int                 `json:"total"`
}
