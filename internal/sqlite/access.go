package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/repository"
)

// MembershipRepository implements repository.MembershipRepository for SQLite
type MembershipRepository struct {
	db *DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// HasAccess resolves the user's role on the project. A user with no
// membership row gets RoleNone, not an error.
func (r *MembershipRepository) HasAccess(ctx context.Context, userID, projectID int64) (access.Role, error) {
	query := `SELECT role FROM memberships WHERE user_id = ? AND project_id = ?`

	var role access.Role
	err := r.db.QueryRowContext(ctx, query, userID, projectID).Scan(&role)
	if err == sql.ErrNoRows {
		return access.RoleNone, nil
	}
	if err != nil {
		return access.RoleNone, &repository.DataAccessError{
			Entity: "membership",
			Filter: fmt.Sprintf("user_id=%d project_id=%d", userID, projectID),
			Err:    err,
		}
	}

	return role, nil
}
