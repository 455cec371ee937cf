package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestStoryRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	projectID := seedProject(t, db, "Test Project")

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	st := &story.Story{
		ProjectID: projectID,
		SprintID:  2,
		Title:     "checkout flow",
		TimeStart: &start,
	}

	err := repo.Create(ctx, st)
	require.NoError(t, err)
	require.NotZero(t, st.ID, "create should assign an id")

	got, err := repo.Get(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, st.ID, got.ID)
	require.Equal(t, projectID, got.ProjectID)
	require.Equal(t, int64(2), got.SprintID)
	require.Equal(t, "checkout flow", got.Title)
	require.Nil(t, got.ParentID)
	require.NotNil(t, got.TimeStart)
	require.True(t, got.TimeStart.Equal(start))
	require.Nil(t, got.TimeEnd)
	require.False(t, got.IsDone)
}

func TestStoryRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStoryRepository(db)

	_, err := repo.Get(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoryRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	projectID := seedProject(t, db, "Test Project")

	st := &story.Story{ProjectID: projectID, SprintID: 1, Title: "original"}
	require.NoError(t, repo.Create(ctx, st))

	end := time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)
	st.IsDone = true
	st.TimeEnd = &end
	require.NoError(t, repo.Update(ctx, st))

	got, err := repo.Get(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, got.IsDone)
	require.NotNil(t, got.TimeEnd)
	require.True(t, got.TimeEnd.Equal(end))
}

func TestStoryRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStoryRepository(db)

	err := repo.Update(context.Background(), &story.Story{ID: 42, Title: "ghost"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoryRepository_ParentLink(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	projectID := seedProject(t, db, "Test Project")

	source := &story.Story{ProjectID: projectID, SprintID: 1, Title: "source"}
	require.NoError(t, repo.Create(ctx, source))

	child := source.CloneForSplit(3)
	require.NoError(t, repo.Create(ctx, child))

	got, err := repo.Get(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	require.Equal(t, source.ID, *got.ParentID)
	require.Equal(t, int64(3), got.SprintID)
}
