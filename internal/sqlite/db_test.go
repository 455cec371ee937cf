package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	// A :memory: database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// seedProject inserts a project row and returns its id
func seedProject(t *testing.T, db *DB, name string) int64 {
	t.Helper()

	result, err := db.Exec(`INSERT INTO projects (name) VALUES (?)`, name)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

// seedPhase inserts a phase row and returns its id
func seedPhase(t *testing.T, db *DB, projectID int64, name string, ord int, isDone bool) int64 {
	t.Helper()

	result, err := db.Exec(
		`INSERT INTO phases (project_id, name, ord, is_done) VALUES (?, ?, ?, ?)`,
		projectID, name, ord, isDone)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"projects",
		"users",
		"task_types",
		"phases",
		"stories",
		"tasks",
		"phase_durations",
		"milestones",
		"memberships",
		"api_tokens",
		"change_log",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestStoriesTable verifies story constraints
func TestStoriesTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, db, "Test Project")

	_, err := db.ExecContext(ctx,
		`INSERT INTO stories (project_id, sprint_id, title) VALUES (?, ?, ?)`,
		projectID, 1, "first story")
	require.NoError(t, err)

	// Foreign key constraint - should fail with an unknown project
	_, err = db.ExecContext(ctx,
		`INSERT INTO stories (project_id, sprint_id, title) VALUES (?, ?, ?)`,
		int64(9999), 1, "orphan story")
	require.Error(t, err, "should fail with invalid project_id")
}

// TestMembershipsTable verifies the role check constraint
func TestMembershipsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, db, "Test Project")
	result, err := db.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, "dana")
	require.NoError(t, err)
	userID, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO memberships (user_id, project_id, role) VALUES (?, ?, ?)`,
		userID, projectID, "member")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO memberships (user_id, project_id, role) VALUES (?, ?, ?)`,
		userID, projectID, "admin")
	require.Error(t, err, "should fail with unknown role")
}
