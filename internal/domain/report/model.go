package report

import (
	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/phase"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
)

// AnnotatedTask is a task resolved against the catalog and rendered
// for display. Resolution is by id, first match; unresolved references
// leave the name empty.
type AnnotatedTask struct {
	task.Task
	TypeName         string `json:"type_name,omitempty"`
	UserName         string `json:"user_name,omitempty"`
	PhaseName        string `json:"phase_name,omitempty"`
	TimeStartDisplay string `json:"time_start_display,omitempty"`
	TimeEndDisplay   string `json:"time_end_display,omitempty"`
}

// Report is the read-only composite a story report request produces.
// It is assembled fresh per request and never persisted.
type Report struct {
	Story     story.Story        `json:"story"`
	Tasks     []AnnotatedTask    `json:"tasks"`
	Users     []catalog.User     `json:"users"`
	Types     []catalog.TaskType `json:"types"`
	Phases    []phase.Annotated  `json:"phases"`
	Totals    phase.Totals       `json:"phase_duration"`
	TaskTotal int                `json:"task_total"`
	TaskDone  int                `json:"task_done"`
	Progress  int                `json:"progress"`
}
