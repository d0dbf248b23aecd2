package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate_Canonical(t *testing.T) {
	require.NoError(t, ValidateDate("2024-01-02"))
	require.NoError(t, ValidateDate("1999-12-31"))
}

func TestValidateDate_Rejects(t *testing.T) {
	cases := []string{
		"",
		"2024-1-2",      // not zero-padded
		"2024/01/02",    // wrong separator
		"02-01-2024",    // wrong field order
		"2024-13-01",    // no such month
		"2024-02-30",    // no such day
		"2024-01-02T00", // trailing garbage
	}
	for _, date := range cases {
		assert.Error(t, ValidateDate(date), "date %q should be rejected", date)
	}
}

func TestNewValidate(t *testing.T) {
	valid := New{Handle: "meditate", CommittedOn: "2024-03-01", Tags: []string{"morning"}}
	require.NoError(t, valid.Validate())

	assert.ErrorIs(t, New{CommittedOn: "2024-03-01"}.Validate(), ErrEmptyHandle)
	assert.Error(t, New{Handle: "h", CommittedOn: "bad"}.Validate())
	assert.ErrorIs(t, New{Handle: "h", CommittedOn: "2024-03-01", Tags: []string{"a", ""}}.Validate(), ErrEmptyTag)
}

func TestPatchValidate(t *testing.T) {
	require.NoError(t, Patch{}.Validate())
	assert.True(t, Patch{}.IsZero())

	handle := "read"
	date := "2024-04-05"
	p := Patch{Handle: &handle, CommittedOn: &date, Tags: []string{"evening"}}
	require.NoError(t, p.Validate())
	assert.False(t, p.IsZero())

	empty := ""
	assert.ErrorIs(t, Patch{Handle: &empty}.Validate(), ErrEmptyHandle)
	bad := "05-04-2024"
	assert.Error(t, Patch{CommittedOn: &bad}.Validate())
	assert.ErrorIs(t, Patch{Tags: []string{""}}.Validate(), ErrEmptyTag)

	// Non-nil empty tags is a deliberate "clear tags" patch, not a no-op.
	clear := Patch{Tags: []string{}}
	require.NoError(t, clear.Validate())
	assert.False(t, clear.IsZero())
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
