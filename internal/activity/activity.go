// Package activity defines the domain types for the virtue activity log.
package activity

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form for CommittedOn values.
// ISO 8601 date strings sort lexicographically in chronological order,
// which the store's ordering and range queries depend on.
const DateLayout = "2006-01-02"

// TimeLayout is the storage form for CreatedAt/UpdatedAt. Fixed-width UTC
// so that lexicographic order over stored values equals chronological order
// (RFC3339Nano trims trailing zeros and breaks that property).
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var (
	// ErrEmptyHandle indicates a missing or blank activity handle.
	ErrEmptyHandle = errors.New("activity handle must not be empty")
	// ErrEmptyTag indicates a blank string in a tag list.
	ErrEmptyTag = errors.New("activity tags must not contain empty strings")
)

// Activity is one logged occurrence of a virtuous action.
type Activity struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	CommittedOn string    `json:"committed_on"` // YYYY-MM-DD
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New is the input for creating an activity. The store assigns the id and
// both timestamps.
type New struct {
	Handle      string   `json:"handle" yaml:"handle"`
	CommittedOn string   `json:"committed_on" yaml:"committed_on"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Validate checks the input against the entity invariants.
func (n New) Validate() error {
	if n.Handle == "" {
		return ErrEmptyHandle
	}
	if err := ValidateDate(n.CommittedOn); err != nil {
		return err
	}
	return validateTags(n.Tags)
}

// Patch is a partial update. Nil fields are left unchanged; a non-nil empty
// Tags slice clears the tag list.
type Patch struct {
	Handle      *string
	CommittedOn *string
	Tags        []string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Handle == nil && p.CommittedOn == nil && p.Tags == nil
}

// Validate checks the supplied fields against the entity invariants.
func (p Patch) Validate() error {
	if p.Handle != nil && *p.Handle == "" {
		return ErrEmptyHandle
	}
	if p.CommittedOn != nil {
		if err := ValidateDate(*p.CommittedOn); err != nil {
			return err
		}
	}
	return validateTags(p.Tags)
}

// ValidateDate enforces canonical YYYY-MM-DD form. Parsing alone is not
// enough: time.Parse accepts some non-canonical spellings that would break
// lexicographic ordering in the store.
func ValidateDate(date string) error {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid committed-on date %q: %w", date, err)
	}
	if t.Format(DateLayout) != date {
		return fmt.Errorf("invalid committed-on date %q: not canonical YYYY-MM-DD", date)
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if tag == "" {
			return ErrEmptyTag
		}
	}
	return nil
}
