package store

import (
	"context"
	"fmt"

	"github.com/virtuelog/virtue/internal/activity"
)

func defaultNewID() string { return activity.NewID() }

// Add persists a new activity. The store assigns the id and both timestamps;
// the returned Activity has CreatedAt == UpdatedAt.
//
// A tag encoding failure aborts the write entirely: no partial row is
// persisted.
func (s *Store) Add(ctx context.Context, input activity.New) (activity.Activity, error) {
	db, err := s.ready()
	if err != nil {
		return activity.Activity{}, err
	}
	if err := input.Validate(); err != nil {
		return activity.Activity{}, fmt.Errorf("add activity: %w", err)
	}

	tagsJSON, err := marshalTags(input.Tags)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("add activity: %w", err)
	}

	now := s.now().UTC()
	act := activity.Activity{
		ID:          s.newID(),
		Handle:      input.Handle,
		CommittedOn: input.CommittedOn,
		Tags:        append([]string(nil), input.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO activities (id, handle, committed_on, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		act.ID,
		act.Handle,
		act.CommittedOn,
		tagsJSON,
		now.Format(activity.TimeLayout),
		now.Format(activity.TimeLayout),
	)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("add activity: %w", err)
	}

	if act.Tags == nil {
		act.Tags = []string{}
	}
	return act, nil
}

// Update applies a partial update to the activity with the given id and
// returns the merged row. Fields absent from the patch keep their prior
// value; updated_at is always refreshed.
//
// The merge happens inside a single UPDATE statement (COALESCE against the
// existing columns) rather than a read-modify-write, so a concurrent update
// or delete on the same id cannot interleave with it. Returns ErrNotFound if
// no row has the id; no row is created.
func (s *Store) Update(ctx context.Context, id string, patch activity.Patch) (activity.Activity, error) {
	db, err := s.ready()
	if err != nil {
		return activity.Activity{}, err
	}
	if err := patch.Validate(); err != nil {
		return activity.Activity{}, fmt.Errorf("update activity: %w", err)
	}

	var tagsJSON any
	if patch.Tags != nil {
		encoded, err := marshalTags(patch.Tags)
		if err != nil {
			return activity.Activity{}, fmt.Errorf("update activity: %w", err)
		}
		tagsJSON = encoded
	}

	now := s.now().UTC()
	res, err := db.ExecContext(ctx, `
		UPDATE activities SET
			handle       = COALESCE(?, handle),
			committed_on = COALESCE(?, committed_on),
			tags         = COALESCE(?, tags),
			updated_at   = ?
		WHERE id = ?
	`,
		nullable(patch.Handle),
		nullable(patch.CommittedOn),
		tagsJSON,
		now.Format(activity.TimeLayout),
		id,
	)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("update activity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return activity.Activity{}, fmt.Errorf("update activity: rows affected: %w", err)
	}
	if affected == 0 {
		return activity.Activity{}, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Delete removes the activity with the given id. Returns true iff a row was
// actually removed; deleting an absent id returns false, not an error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	db, err := s.ready()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete activity: rows affected: %w", err)
	}
	return affected > 0, nil
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
