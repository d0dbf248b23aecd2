// Package stats derives read-side statistics from activity lists: totals,
// streaks of consecutive committed-on days, and tag popularity. Everything
// here is a pure transform over the store's List output.
package stats

import (
	"sort"
	"time"

	"github.com/virtuelog/virtue/internal/activity"
)

// TagCount pairs a tag with the number of activities carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary aggregates everything the stats view renders.
type Summary struct {
	TotalActivities int        `json:"total_activities"`
	ActiveDays      int        `json:"active_days"`
	FirstDate       string     `json:"first_date,omitempty"`
	LastDate        string     `json:"last_date,omitempty"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	TopTags         []TagCount `json:"top_tags"`
}

// Summarize computes a Summary for activities as of today (a YYYY-MM-DD
// string, normally the current local date). The input is expected in the
// store's list order; Summarize does not depend on it.
func Summarize(activities []activity.Activity, today string) Summary {
	days := distinctDays(activities)

	s := Summary{
		TotalActivities: len(activities),
		ActiveDays:      len(days),
		CurrentStreak:   CurrentStreak(activities, today),
		LongestStreak:   LongestStreak(activities),
		TopTags:         TagCounts(activities),
	}
	if len(days) > 0 {
		s.FirstDate = days[0]
		s.LastDate = days[len(days)-1]
	}
	return s
}

// TagCounts returns per-tag activity counts, most frequent first, ties
// broken lexicographically. A tag repeated within one activity counts once.
func TagCounts(activities []activity.Activity) []TagCount {
	counts := make(map[string]int)
	for _, act := range activities {
		seen := make(map[string]struct{}, len(act.Tags))
		for _, tag := range act.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// CurrentStreak counts consecutive active days ending today or yesterday.
// A streak that ended yesterday still counts: logging later today extends
// it rather than restarting from zero.
func CurrentStreak(activities []activity.Activity, today string) int {
	days := distinctDays(activities)
	if len(days) == 0 {
		return 0
	}

	anchor, err := time.Parse(activity.DateLayout, today)
	if err != nil {
		return 0
	}

	last := days[len(days)-1]
	switch last {
	case anchor.Format(activity.DateLayout):
		// active today
	case anchor.AddDate(0, 0, -1).Format(activity.DateLayout):
		anchor = anchor.AddDate(0, 0, -1)
	default:
		return 0
	}

	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i] != anchor.Format(activity.DateLayout) {
			break
		}
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive active days anywhere in
// the history.
func LongestStreak(activities []activity.Activity) int {
	days := distinctDays(activities)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	prev, err := time.Parse(activity.DateLayout, days[0])
	if err != nil {
		return 0
	}
	for _, day := range days[1:] {
		cur, err := time.Parse(activity.DateLayout, day)
		if err != nil {
			continue
		}
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = cur
	}
	return longest
}

// distinctDays returns the sorted ascending set of committed-on dates.
// Unparseable dates cannot occur through the store but are skipped rather
// than poisoning the aggregate.
func distinctDays(activities []activity.Activity) []string {
	set := make(map[string]struct{})
	for _, act := range activities {
		if activity.ValidateDate(act.CommittedOn) != nil {
			continue
		}
		set[act.CommittedOn] = struct{}{}
	}
	days := make([]string, 0, len(set))
	for day := range set {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}
