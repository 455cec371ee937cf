package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/repository"
)

// UserRepository implements repository.UserRepository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users
func (r *UserRepository) List(ctx context.Context) ([]catalog.User, error) {
	query := `SELECT id, name, email FROM users ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "user", Err: err}
	}
	defer rows.Close()

	var users []catalog.User
	for rows.Next() {
		var u catalog.User
		var email sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &email); err != nil {
			return nil, &repository.DataAccessError{Entity: "user", Err: err}
		}
		u.Email = email.String
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "user", Err: err}
	}

	return users, nil
}

// TypeRepository implements repository.TypeRepository for SQLite
type TypeRepository struct {
	db *DB
}

// NewTypeRepository creates a new TypeRepository
func NewTypeRepository(db *DB) *TypeRepository {
	return &TypeRepository{db: db}
}

// List returns all task types
func (r *TypeRepository) List(ctx context.Context) ([]catalog.TaskType, error) {
	query := `SELECT id, name FROM task_types ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "task_type", Err: err}
	}
	defer rows.Close()

	var types []catalog.TaskType
	for rows.Next() {
		var tt catalog.TaskType
		if err := rows.Scan(&tt.ID, &tt.Name); err != nil {
			return nil, &repository.DataAccessError{Entity: "task_type", Err: err}
		}
		types = append(types, tt)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "task_type", Err: err}
	}

	return types, nil
}

// MilestoneRepository implements repository.MilestoneRepository for SQLite
type MilestoneRepository struct {
	db *DB
}

// NewMilestoneRepository creates a new MilestoneRepository
func NewMilestoneRepository(db *DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// List returns the project's milestones ordered by due date, undated last
func (r *MilestoneRepository) List(ctx context.Context, projectID int64) ([]catalog.Milestone, error) {
	query := `
		SELECT id, project_id, name, due_at
		FROM milestones
		WHERE project_id = ?
		ORDER BY due_at IS NULL, due_at ASC, id ASC
	`

	filter := fmt.Sprintf("project_id=%d", projectID)
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, &repository.DataAccessError{Entity: "milestone", Filter: filter, Err: err}
	}
	defer rows.Close()

	var milestones []catalog.Milestone
	for rows.Next() {
		var m catalog.Milestone
		var dueAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &dueAt); err != nil {
			return nil, &repository.DataAccessError{Entity: "milestone", Filter: filter, Err: err}
		}
		m.DueAt = timePtr(dueAt)
		milestones = append(milestones, m)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.DataAccessError{Entity: "milestone", Filter: filter, Err: err}
	}

	return milestones, nil
}
