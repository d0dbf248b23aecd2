package store

import (
	"encoding/json"
	"fmt"
)

// marshalTags converts a tag list to its JSON TEXT storage form.
// Entry order is preserved; nil encodes as an empty array so the column is
// always valid, parseable JSON.
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

// unmarshalTags parses the stored JSON TEXT back to a tag list. Failures are
// reported as a *DecodeError carrying the owning row's id.
func unmarshalTags(id, raw string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, &DecodeError{ID: id, Raw: raw, Err: err}
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
