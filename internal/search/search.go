// Package search filters activity lists by substring match on handle and
// tags. It operates purely on already-loaded activities; the store is never
// consulted.
package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/virtuelog/virtue/internal/activity"
)

// Filter returns the activities whose handle or any tag contains the query,
// case-insensitively. Input order is preserved. An empty query matches
// everything.
func Filter(activities []activity.Activity, query string) []activity.Activity {
	needle := fold(query)
	if needle == "" {
		return activities
	}

	out := []activity.Activity{}
	for _, act := range activities {
		if Matches(act, needle) {
			out = append(out, act)
		}
	}
	return out
}

// Matches reports whether the activity's handle or any of its tags contains
// the already-folded needle. Use Fold to prepare the needle when calling
// this directly.
func Matches(act activity.Activity, needle string) bool {
	if strings.Contains(fold(act.Handle), needle) {
		return true
	}
	for _, tag := range act.Tags {
		if strings.Contains(fold(tag), needle) {
			return true
		}
	}
	return false
}

// Fold normalizes a query the same way match candidates are normalized.
func Fold(s string) string { return fold(s) }

// fold canonicalizes to NFC then lowercases, so composed and decomposed
// spellings of the same text compare equal.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
