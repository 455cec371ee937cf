package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/okrause/storyline/internal/domain/task"
	"github.com/okrause/storyline/internal/repository"
)

// TaskRepository implements repository.TaskRepository for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, story_id, phase_id, user_id, type_id, title, is_done,
       time_start, time_end, created_at, modified_at`

func scanTask(scan func(dest ...any) error) (*task.Task, error) {
	var t task.Task
	var timeStart, timeEnd sql.NullTime
	err := scan(
		&t.ID,
		&t.StoryID,
		&t.PhaseID,
		&t.UserID,
		&t.TypeID,
		&t.Title,
		&t.IsDone,
		&timeStart,
		&timeEnd,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.TimeStart = timePtr(timeStart)
	t.TimeEnd = timePtr(timeEnd)
	return &t, nil
}

// Get retrieves a task by ID
func (r *TaskRepository) Get(ctx context.Context, id int64) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "task", Filter: fmt.Sprintf("id=%d", id), Err: err}
	}
	return t, nil
}

// List returns the tasks matching the filter, ordered by id for
// deterministic processing
func (r *TaskRepository) List(ctx context.Context, opts task.ListOptions) ([]task.Task, error) {
	var conds []string
	var args []any

	if opts.StoryID != 0 {
		conds = append(conds, "story_id = ?")
		args = append(args, opts.StoryID)
	}
	if len(opts.PhaseIDs) > 0 {
		conds = append(conds, "phase_id IN ("+placeholders(len(opts.PhaseIDs))+")")
		for _, id := range opts.PhaseIDs {
			args = append(args, id)
		}
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	filter := fmt.Sprintf("story_id=%d phase_ids=%v", opts.StoryID, opts.PhaseIDs)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "task", Filter: filter, Err: err}
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, &repository.DataAccessError{Entity: "task", Filter: filter, Err: err}
		}
		tasks = append(tasks, *t)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "task", Filter: filter, Err: err}
	}

	return tasks, nil
}

// Save inserts the task when it has no ID yet, otherwise updates it
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	if t.ID == 0 {
		return r.insert(ctx, t)
	}
	return r.update(ctx, t)
}

func (r *TaskRepository) insert(ctx context.Context, t *task.Task) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	query := `
		INSERT INTO tasks (story_id, phase_id, user_id, type_id, title, is_done,
		                   time_start, time_end, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		t.StoryID,
		t.PhaseID,
		t.UserID,
		t.TypeID,
		t.Title,
		t.IsDone,
		nullTime(t.TimeStart),
		nullTime(t.TimeEnd),
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return &repository.PersistenceError{Entity: "task", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &repository.PersistenceError{Entity: "task", Err: err}
	}
	t.ID = id

	return nil
}

func (r *TaskRepository) update(ctx context.Context, t *task.Task) error {
	t.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET story_id = ?, phase_id = ?, user_id = ?, type_id = ?, title = ?,
		    is_done = ?, time_start = ?, time_end = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.StoryID,
		t.PhaseID,
		t.UserID,
		t.TypeID,
		t.Title,
		t.IsDone,
		nullTime(t.TimeStart),
		nullTime(t.TimeEnd),
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return &repository.PersistenceError{Entity: "task", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &repository.PersistenceError{Entity: "task", Err: err}
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// placeholders builds a "?, ?, ?" list of the given length.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
