package activity

import "github.com/google/uuid"

// NewID returns a fresh unique activity id.
//
// UUIDv7 is time-ordered, which keeps ids from rapid successive adds
// distinct and roughly sortable. If the random source fails we fall back
// to v4 rather than surfacing an error for an operation that cannot
// meaningfully be retried by the caller.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
