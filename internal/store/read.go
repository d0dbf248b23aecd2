package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/virtuelog/virtue/internal/activity"
)

const selectColumns = `id, handle, committed_on, tags, created_at, updated_at`

// List returns all activities ordered by committed_on descending, ties
// broken by created_at descending: newest-committed first and, within a day,
// most-recently-logged first.
func (s *Store) List(ctx context.Context) ([]activity.Activity, error) {
	db, err := s.ready()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM activities
		ORDER BY committed_on DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// ListByDateRange returns activities with start <= committed_on <= end,
// inclusive both ends, in the same order as List. The bounds are not
// validated: an inverted range yields an empty result, not an error.
func (s *Store) ListByDateRange(ctx context.Context, start, end string) ([]activity.Activity, error) {
	db, err := s.ready()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM activities
		WHERE committed_on >= ? AND committed_on <= ?
		ORDER BY committed_on DESC, created_at DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list activities by date range: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// GetByID returns the activity with the given id, or ErrNotFound. Absence is
// a normal outcome and is never conflated with a storage failure.
func (s *Store) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	db, err := s.ready()
	if err != nil {
		return activity.Activity{}, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM activities
		WHERE id = ?
	`, id)

	act, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return activity.Activity{}, ErrNotFound
	}
	if err != nil {
		return activity.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	return act, nil
}

// DistinctTags returns every tag across all activities, deduplicated and
// lexicographically sorted.
func (s *Store) DistinctTags(ctx context.Context) ([]string, error) {
	db, err := s.ready()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, tags FROM activities`)
	if err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("distinct tags: %w", err)
		}
		tags, err := unmarshalTags(id, raw)
		if err != nil {
			return nil, fmt.Errorf("distinct tags: %w", err)
		}
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (activity.Activity, error) {
	var (
		act                  activity.Activity
		rawTags              string
		createdAt, updatedAt string
	)
	if err := row.Scan(&act.ID, &act.Handle, &act.CommittedOn, &rawTags, &createdAt, &updatedAt); err != nil {
		return activity.Activity{}, err
	}

	tags, err := unmarshalTags(act.ID, rawTags)
	if err != nil {
		return activity.Activity{}, err
	}
	act.Tags = tags

	if act.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return activity.Activity{}, fmt.Errorf("activity %s created_at: %w", act.ID, err)
	}
	if act.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return activity.Activity{}, fmt.Errorf("activity %s updated_at: %w", act.ID, err)
	}
	return act, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(activity.TimeLayout, raw)
	if err != nil {
		// Tolerate plain RFC 3339 so databases written by earlier builds
		// still read back.
		if fallback, ferr := time.Parse(time.RFC3339Nano, raw); ferr == nil {
			return fallback, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func collect(rows *sql.Rows) ([]activity.Activity, error) {
	activities := []activity.Activity{}
	for rows.Next() {
		act, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}
