package cli

import (
	"fmt"
	"strings"

	"github.com/virtuelog/virtue/internal/activity"
	"github.com/virtuelog/virtue/internal/stats"
)

func formatLine(act activity.Activity) string {
	line := fmt.Sprintf("%s  %s  %s", act.CommittedOn, act.ID, act.Handle)
	if len(act.Tags) > 0 {
		line += "  [" + strings.Join(act.Tags, ", ") + "]"
	}
	return line
}

func renderList(activities []activity.Activity) string {
	if len(activities) == 0 {
		return "no activities recorded\n"
	}
	var b strings.Builder
	for _, act := range activities {
		b.WriteString(formatLine(act))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderActivity(act activity.Activity) string {
	tags := "(none)"
	if len(act.Tags) > 0 {
		tags = strings.Join(act.Tags, ", ")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "id:           %s\n", act.ID)
	fmt.Fprintf(&b, "handle:       %s\n", act.Handle)
	fmt.Fprintf(&b, "committed-on: %s\n", act.CommittedOn)
	fmt.Fprintf(&b, "tags:         %s\n", tags)
	fmt.Fprintf(&b, "created-at:   %s\n", act.CreatedAt.Format(activity.TimeLayout))
	fmt.Fprintf(&b, "updated-at:   %s\n", act.UpdatedAt.Format(activity.TimeLayout))
	return b.String()
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return "no tags recorded\n"
	}
	return strings.Join(tags, "\n") + "\n"
}

func renderStats(s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "total activities: %d\n", s.TotalActivities)
	fmt.Fprintf(&b, "active days:      %d\n", s.ActiveDays)
	if s.FirstDate != "" {
		fmt.Fprintf(&b, "first activity:   %s\n", s.FirstDate)
		fmt.Fprintf(&b, "last activity:    %s\n", s.LastDate)
	}
	fmt.Fprintf(&b, "current streak:   %d\n", s.CurrentStreak)
	fmt.Fprintf(&b, "longest streak:   %d\n", s.LongestStreak)
	if len(s.TopTags) > 0 {
		b.WriteString("top tags:\n")
		for _, tc := range s.TopTags {
			fmt.Fprintf(&b, "  %s (%d)\n", tc.Tag, tc.Count)
		}
	}
	return b.String()
}
