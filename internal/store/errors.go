package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by every data operation invoked before
	// Initialize has completed successfully.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrNotFound is returned by GetByID and Update when no activity has the
	// requested id. Absence is a normal outcome, distinct from storage
	// failures; callers should test with errors.Is.
	ErrNotFound = errors.New("activity not found")
)

// DecodeError reports a stored tags value that could not be parsed back into
// a string list. The row's raw value is retained for diagnostics.
type DecodeError struct {
	ID  string
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode tags for activity %s: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
