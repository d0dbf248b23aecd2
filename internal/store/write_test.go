package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuelog/virtue/internal/activity"
)

func TestAdd_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{
		Handle:      "meditate",
		CommittedOn: "2024-05-30",
		Tags:        []string{"morning", "calm"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "meditate", got.Handle)
	assert.Equal(t, "2024-05-30", got.CommittedOn)
	assert.Equal(t, []string{"morning", "calm"}, got.Tags)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestAdd_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		act, err := s.Add(ctx, activity.New{Handle: "h", CommittedOn: "2024-01-01"})
		require.NoError(t, err)
		_, dup := seen[act.ID]
		require.False(t, dup, "duplicate id %q", act.ID)
		seen[act.ID] = struct{}{}
	}
}

func TestAdd_NilTagsStoredAsEmptyList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{Handle: "walk", CommittedOn: "2024-05-30"})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Add(ctx, activity.New{CommittedOn: "2024-05-30"})
	assert.ErrorIs(t, err, activity.ErrEmptyHandle)

	_, err = s.Add(ctx, activity.New{Handle: "h", CommittedOn: "30/05/2024"})
	assert.Error(t, err)

	// Nothing was persisted by the rejected writes.
	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdate_PartialPreservesUntouchedFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{
		Handle:      "h",
		CommittedOn: "2024-01-01",
		Tags:        []string{"a"},
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, activity.Patch{Tags: []string{"b", "c"}})
	require.NoError(t, err)

	assert.Equal(t, "h", updated.Handle)
	assert.Equal(t, "2024-01-01", updated.CommittedOn)
	assert.Equal(t, []string{"b", "c"}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt), "updated_at must be refreshed")
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "created_at is immutable")
}

func TestUpdate_AllFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{Handle: "old", CommittedOn: "2024-01-01", Tags: []string{"x"}})
	require.NoError(t, err)

	handle := "new"
	date := "2024-02-02"
	updated, err := s.Update(ctx, created.ID, activity.Patch{
		Handle:      &handle,
		CommittedOn: &date,
		Tags:        []string{"y", "z"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Handle)
	assert.Equal(t, "2024-02-02", updated.CommittedOn)
	assert.Equal(t, []string{"y", "z"}, updated.Tags)
}

func TestUpdate_ClearTags(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{Handle: "h", CommittedOn: "2024-01-01", Tags: []string{"a", "b"}})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, activity.Patch{Tags: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.Tags)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	handle := "h"
	_, err := s.Update(ctx, "no-such-id", activity.Patch{Handle: &handle})
	assert.ErrorIs(t, err, ErrNotFound)

	// NotFound update is a no-op: no row was created.
	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdate_RejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{Handle: "h", CommittedOn: "2024-01-01"})
	require.NoError(t, err)

	empty := ""
	_, err = s.Update(ctx, created.ID, activity.Patch{Handle: &empty})
	assert.ErrorIs(t, err, activity.ErrEmptyHandle)

	bad := "not-a-date"
	_, err = s.Update(ctx, created.ID, activity.Patch{CommittedOn: &bad})
	assert.Error(t, err)

	// Rejected patches leave the row untouched.
	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "h", got.Handle)
	assert.Equal(t, "2024-01-01", got.CommittedOn)
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt))
}

func TestDelete_RemovesRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Add(ctx, activity.New{Handle: "h", CommittedOn: "2024-01-01"})
	require.NoError(t, err)

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_AbsentIDReturnsFalse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	removed, err := s.Delete(ctx, "nonexistent-id")
	require.NoError(t, err)
	assert.False(t, removed)
}
