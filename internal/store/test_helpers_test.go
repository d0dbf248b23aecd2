package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virtuelog/virtue/internal/testutil"
)

// newTestStore returns an initialized store backed by a temp-dir database,
// with a ticking deterministic clock so created_at values are strictly
// increasing across adds.
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	clock := testutil.NewClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), time.Second)
	all := append([]Option{WithClock(clock.Now)}, opts...)

	s := New(filepath.Join(t.TempDir(), "virtue.db"), all...)
	require.NoError(t, s.Initialize(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}
