package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virtuelog/virtue/internal/activity"
)

func acts() []activity.Activity {
	return []activity.Activity{
		{ID: "1", Handle: "Morning Run", Tags: []string{"exercise", "outdoors"}},
		{ID: "2", Handle: "Meditate", Tags: []string{"calm"}},
		{ID: "3", Handle: "Read", Tags: []string{"books", "Exercise-adjacent"}},
	}
}

func ids(list []activity.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestFilter_MatchesHandle(t *testing.T) {
	got := Filter(acts(), "run")
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_MatchesTags(t *testing.T) {
	got := Filter(acts(), "exercise")
	assert.Equal(t, []string{"1", "3"}, ids(got), "tag matches are case-insensitive and preserve input order")
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := Filter(acts(), "MEDIT")
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_EmptyQueryMatchesAll(t *testing.T) {
	got := Filter(acts(), "")
	assert.Len(t, got, 3)
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(acts(), "swimming")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilter_UnicodeNormalization(t *testing.T) {
	// "café" spelled with a combining acute accent (decomposed form).
	decomposed := "café"
	list := []activity.Activity{{ID: "1", Handle: "Café visit"}}

	got := Filter(list, decomposed)
	assert.Equal(t, []string{"1"}, ids(got), "composed and decomposed spellings compare equal")
}
