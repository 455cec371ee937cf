package story

import "time"

// Story is a unit of work that can be split into a parent and a child
// story. SprintID 0 denotes the project backlog. ParentID is set on
// stories produced by a split and points at the source story.
type Story struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	SprintID  int64      `json:"sprint_id"`
	ParentID  *int64     `json:"parent_id,omitempty"`
	Title     string     `json:"title"`
	IsDone    bool       `json:"is_done"`
	TimeStart *time.Time `json:"time_start,omitempty"`
	TimeEnd   *time.Time `json:"time_end,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CloneForSplit copies the story without its identity and timing
// fields, re-homed to the destination sprint and linked back to its
// source.
func (s *Story) CloneForSplit(sprintID int64) *Story {
	parentID := s.ID
	return &Story{
		ProjectID: s.ProjectID,
		SprintID:  sprintID,
		ParentID:  &parentID,
		Title:     s.Title,
		IsDone:    s.IsDone,
	}
}
