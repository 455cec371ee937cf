// Package catalog holds the reference data the reporting read path
// resolves tasks against: assignees, task types, and milestones.
package catalog

import "time"

// User is a task assignee.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// TaskType classifies tasks (e.g. feature, bug, chore).
type TaskType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Milestone marks a project deadline.
type Milestone struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	Name      string     `json:"name"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}
