package task

import "time"

// Task is a unit of work belonging to exactly one story and one phase
// at any instant. A move changes both atomically from the task's
// perspective, even though observers see it as a destroy+create pair.
type Task struct {
	ID        int64      `json:"id"`
	StoryID   int64      `json:"story_id"`
	PhaseID   int64      `json:"phase_id"`
	UserID    int64      `json:"user_id,omitempty"`
	TypeID    int64      `json:"type_id,omitempty"`
	Title     string     `json:"title"`
	IsDone    bool       `json:"is_done"`
	TimeStart *time.Time `json:"time_start,omitempty"`
	TimeEnd   *time.Time `json:"time_end,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ListOptions filters task listings. StoryID is the canonical filter
// field for matching a task's owning story.
type ListOptions struct {
	StoryID  int64
	PhaseIDs []int64
}
