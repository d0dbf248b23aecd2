// Package archive reads and writes activity backup files. Exports carry the
// full stored record; imports are schema-validated up front and then
// replayed through the store, which assigns fresh ids and timestamps.
package archive

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/virtuelog/virtue/internal/activity"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the top-level archive shape shared by export and import.
type Document struct {
	Activities []Entry `json:"activities" yaml:"activities"`
}

// Entry is one archived activity. Identity and timestamps are informational
// on import: the store reassigns them.
type Entry struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Handle      string   `json:"handle" yaml:"handle"`
	CommittedOn string   `json:"committed_on" yaml:"committed_on"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Export writes all activities to w in the requested format.
func Export(w io.Writer, activities []activity.Activity, format Format) error {
	doc := Document{Activities: make([]Entry, 0, len(activities))}
	for _, act := range activities {
		doc.Activities = append(doc.Activities, Entry{
			ID:          act.ID,
			Handle:      act.Handle,
			CommittedOn: act.CommittedOn,
			Tags:        act.Tags,
			CreatedAt:   act.CreatedAt.Format(activity.TimeLayout),
			UpdatedAt:   act.UpdatedAt.Format(activity.TimeLayout),
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export archive: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			_ = enc.Close()
			return fmt.Errorf("export archive: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export archive: %w", err)
		}
	default:
		return fmt.Errorf("export archive: unknown format %q", format)
	}
	return nil
}
