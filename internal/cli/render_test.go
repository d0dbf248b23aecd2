package cli

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/virtuelog/virtue/internal/activity"
	"github.com/virtuelog/virtue/internal/stats"
)

func fixtureActivities() []activity.Activity {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return []activity.Activity{
		{ID: "id-3", Handle: "meditate", CommittedOn: "2024-01-03", Tags: []string{"calm"}, CreatedAt: at, UpdatedAt: at},
		{ID: "id-2", Handle: "run", CommittedOn: "2024-01-02", Tags: []string{"exercise", "outdoors"}, CreatedAt: at, UpdatedAt: at},
		{ID: "id-1", Handle: "read", CommittedOn: "2024-01-01", Tags: []string{}, CreatedAt: at, UpdatedAt: at},
	}
}

func TestRenderList_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "list_basic", []byte(renderList(fixtureActivities())))
}

func TestRenderList_Empty_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "list_empty", []byte(renderList(nil)))
}

func TestRenderActivity_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "activity_details", []byte(renderActivity(fixtureActivities()[2])))
}

func TestRenderStats_Golden(t *testing.T) {
	summary := stats.Summarize(fixtureActivities(), "2024-01-03")
	g := goldie.New(t)
	g.Assert(t, "stats_summary", []byte(renderStats(summary)))
}

func TestRenderStats_Empty_Golden(t *testing.T) {
	summary := stats.Summarize(nil, "2024-01-03")
	g := goldie.New(t)
	g.Assert(t, "stats_empty", []byte(renderStats(summary)))
}

func TestRenderTags(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "tags_sorted", []byte(renderTags([]string{"calm", "exercise", "outdoors"})))
}
