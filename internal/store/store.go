package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// State describes where a Store is in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option customizes a Store. Used by tests to pin timestamps and ids.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store owns the activities table in a single local SQLite file.
//
// A Store must be initialized before use. The mutex is held across the whole
// initialization sequence, so concurrent Initialize calls coalesce: the
// second caller blocks, observes READY and returns without side effects.
type Store struct {
	path  string
	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	state State
	db    *sql.DB
}

// New constructs an uninitialized Store for the database file at path.
// No I/O happens until Initialize.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		now:   time.Now,
		newID: defaultNewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Initialize opens the database (creating the file if absent), applies the
// schema and its indexes, and transitions the store to READY.
//
// Idempotent by intent: a READY store returns immediately. On any failure
// the store resets to UNINITIALIZED, with no half-open handle retained, so a
// later call can retry.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady {
		return nil
	}
	s.state = StateInitializing

	db, err := open(ctx, s.path)
	if err != nil {
		s.state = StateUninitialized
		return fmt.Errorf("initialize store: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		s.state = StateUninitialized
		return fmt.Errorf("initialize store: apply schema: %w", err)
	}

	s.db = db
	s.state = StateReady
	return nil
}

// Close releases the database handle and returns the store to its
// uninitialized state. Safe on an uninitialized store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.state = StateUninitialized
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.state = StateUninitialized
	return err
}

// ready returns the database handle, or ErrNotInitialized when the store has
// not reached READY. Operations fail fast rather than block or queue.
func (s *Store) ready() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY from our own process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	return nil
}
