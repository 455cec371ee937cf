package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/repository"
)

// StoryRepository implements repository.StoryRepository for SQLite
type StoryRepository struct {
	db *DB
}

// NewStoryRepository creates a new StoryRepository
func NewStoryRepository(db *DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Get retrieves a story by ID
func (r *StoryRepository) Get(ctx context.Context, id int64) (*story.Story, error) {
	query := `
		SELECT id, project_id, sprint_id, parent_id, title, is_done,
		       time_start, time_end, created_at, modified_at
		FROM stories
		WHERE id = ?
	`

	var st story.Story
	var parentID sql.NullInt64
	var timeStart, timeEnd sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID,
		&st.ProjectID,
		&st.SprintID,
		&parentID,
		&st.Title,
		&st.IsDone,
		&timeStart,
		&timeEnd,
		&st.CreatedAt,
		&st.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "story", Filter: fmt.Sprintf("id=%d", id), Err: err}
	}

	if parentID.Valid {
		st.ParentID = &parentID.Int64
	}
	st.TimeStart = timePtr(timeStart)
	st.TimeEnd = timePtr(timeEnd)

	return &st, nil
}

// Create inserts a new story and fills in its assigned ID
func (r *StoryRepository) Create(ctx context.Context, st *story.Story) error {
	now := time.Now()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = now
	}
	st.UpdatedAt = now

	query := `
		INSERT INTO stories (project_id, sprint_id, parent_id, title, is_done,
		                     time_start, time_end, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var parentID sql.NullInt64
	if st.ParentID != nil {
		parentID = sql.NullInt64{Int64: *st.ParentID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		st.ProjectID,
		st.SprintID,
		parentID,
		st.Title,
		st.IsDone,
		nullTime(st.TimeStart),
		nullTime(st.TimeEnd),
		st.CreatedAt,
		st.UpdatedAt,
	)
	if err != nil {
		return &repository.PersistenceError{Entity: "story", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &repository.PersistenceError{Entity: "story", Err: err}
	}
	st.ID = id

	return nil
}

// Update persists the full state of an existing story
func (r *StoryRepository) Update(ctx context.Context, st *story.Story) error {
	st.UpdatedAt = time.Now()

	query := `
		UPDATE stories
		SET project_id = ?, sprint_id = ?, parent_id = ?, title = ?, is_done = ?,
		    time_start = ?, time_end = ?, modified_at = ?
		WHERE id = ?
	`

	var parentID sql.NullInt64
	if st.ParentID != nil {
		parentID = sql.NullInt64{Int64: *st.ParentID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		st.ProjectID,
		st.SprintID,
		parentID,
		st.Title,
		st.IsDone,
		nullTime(st.TimeStart),
		nullTime(st.TimeEnd),
		st.UpdatedAt,
		st.ID,
	)
	if err != nil {
		return &repository.PersistenceError{Entity: "story", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &repository.PersistenceError{Entity: "story", Err: err}
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
