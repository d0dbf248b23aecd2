package archive

import (
	_ "embed"
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/virtuelog/virtue/internal/activity"
)

//go:embed schema.cue
var schemaCUE string

// Import parses an archive from r and returns the activity inputs it
// contains. The whole document is validated against the archive schema
// before anything is returned: one malformed entry rejects the file, so a
// partial import can never happen.
//
// YAML is a superset of JSON here, so both exported formats read back
// through the same path.
func Import(r io.Reader) ([]activity.New, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("import archive: read: %w", err)
	}

	// Validate the raw document before binding it to Go types, so schema
	// violations report CUE's field-level positions instead of a decode
	// error on some unrelated struct field.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("import archive: parse: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("import archive: empty document")
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("import archive: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("import archive: decode: %w", err)
	}

	inputs := make([]activity.New, 0, len(doc.Activities))
	for i, entry := range doc.Activities {
		input := activity.New{
			Handle:      entry.Handle,
			CommittedOn: entry.CommittedOn,
			Tags:        entry.Tags,
		}
		// The CUE schema already constrains these; Validate is the final
		// word so the store and the importer cannot drift apart.
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("import archive: entry %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func validate(doc any) error {
	cuectx := cuecontext.New()

	schema := cuectx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile archive schema: %w", err)
	}

	value := cuectx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Archive")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema violation:\n%s", cueerrors.Details(err, nil))
	}
	return nil
}
