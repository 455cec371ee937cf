// Package access answers whether a user may see a project's data. It
// gates the reporting read path but never alters what the aggregation
// computes.
package access

import (
	"context"
	"errors"
)

// Role is the level of access a user holds on a project.
type Role string

const (
	RoleNone   Role = ""
	RoleViewer Role = "viewer"
	RoleMember Role = "member"
	RoleOwner  Role = "owner"
)

// ErrDenied indicates the user holds no role on the project.
var ErrDenied = errors.New("access denied")

// Controller resolves a user's role on a project. RoleNone with a nil
// error means the user has no access.
type Controller interface {
	HasAccess(ctx context.Context, userID, projectID int64) (Role, error)
}
