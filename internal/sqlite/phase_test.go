package sqlite

import (
	"context"
	"testing"

	"github.com/okrause/storyline/internal/access"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/notify"
	"github.com/stretchr/testify/require"
)

func TestPhaseRepository_ListOpen(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewPhaseRepository(db)

	projectID := seedProject(t, db, "Test Project")
	otherProject := seedProject(t, db, "Other Project")

	seedPhase(t, db, projectID, "build", 1, false)
	seedPhase(t, db, projectID, "design", 0, false)
	seedPhase(t, db, projectID, "retired", 2, true)
	seedPhase(t, db, otherProject, "elsewhere", 0, false)

	phases, err := repo.ListOpen(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, phases, 2, "done phases and other projects excluded")
	require.Equal(t, "design", phases[0].Name, "ordered by workflow position")
	require.Equal(t, "build", phases[1].Name)
}

func TestPhaseDurationRepository_ListForStory(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewPhaseDurationRepository(db)

	projectID := seedProject(t, db, "Test Project")
	designID := seedPhase(t, db, projectID, "design", 0, false)
	buildID := seedPhase(t, db, projectID, "build", 1, false)

	st := &story.Story{ProjectID: projectID, SprintID: 1, Title: "story"}
	require.NoError(t, NewStoryRepository(db).Create(ctx, st))
	other := &story.Story{ProjectID: projectID, SprintID: 1, Title: "other"}
	require.NoError(t, NewStoryRepository(db).Create(ctx, other))

	for _, row := range []struct {
		phaseID  int64
		storyID  int64
		duration int64
	}{
		{designID, st.ID, 100},
		{buildID, st.ID, 50},
		{designID, other.ID, 999},
	} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO phase_durations (phase_id, story_id, duration) VALUES (?, ?, ?)`,
			row.phaseID, row.storyID, row.duration)
		require.NoError(t, err)
	}

	entries, err := repo.ListForStory(ctx, st.ID, []int64{designID, buildID})
	require.NoError(t, err)
	require.Len(t, entries, 2, "other stories excluded")
	require.Equal(t, int64(100), entries[0].Duration)
	require.Equal(t, int64(50), entries[1].Duration)

	// Filtering down to one phase drops the other entry.
	entries, err = repo.ListForStory(ctx, st.ID, []int64{buildID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, buildID, entries[0].PhaseID)
}

func TestPhaseDurationRepository_NoPhases(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPhaseDurationRepository(db)

	entries, err := repo.ListForStory(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMembershipRepository_HasAccess(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMembershipRepository(db)

	projectID := seedProject(t, db, "Test Project")
	result, err := db.Exec(`INSERT INTO users (name) VALUES (?)`, "dana")
	require.NoError(t, err)
	userID, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO memberships (user_id, project_id, role) VALUES (?, ?, ?)`,
		userID, projectID, "owner")
	require.NoError(t, err)

	role, err := repo.HasAccess(ctx, userID, projectID)
	require.NoError(t, err)
	require.Equal(t, access.RoleOwner, role)

	// No membership row resolves to no role, not an error.
	role, err = repo.HasAccess(ctx, userID+1, projectID)
	require.NoError(t, err)
	require.Equal(t, access.RoleNone, role)
}

func TestChangeLogRepository_Append(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)

	ev := notify.Event{
		ID:       "ev-1",
		Action:   notify.ActionCreated,
		Entity:   "story",
		EntityID: 7,
		Payload:  map[string]any{"title": "checkout flow"},
	}
	require.NoError(t, repo.Append(ctx, &ev))

	var action, entity, payload string
	var entityID int64
	err := db.QueryRowContext(ctx,
		`SELECT action, entity, entity_id, payload FROM change_log WHERE event_id = ?`,
		"ev-1").Scan(&action, &entity, &entityID, &payload)
	require.NoError(t, err)
	require.Equal(t, "created", action)
	require.Equal(t, "story", entity)
	require.Equal(t, int64(7), entityID)
	require.JSONEq(t, `{"title": "checkout flow"}`, payload)
}
