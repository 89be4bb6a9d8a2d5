package domain

import (
	"strings"
	"time"
)

// Keyword is the domain-defining filter term. The whole point of the board
// is to surface home-based-learning records out of a course's full stream,
// so the match is a fixed case-insensitive substring, not configuration.
const Keyword = "hbl"

// TimeRange is a creation-time window. The zero value means "no window".
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Bounded reports whether both endpoints are set. An unbounded range
// disables the range filter entirely; it never excludes items.
func (r TimeRange) Bounded() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains reports whether t falls within [From, To], inclusive on both
// ends, comparing raw epoch milliseconds. No timezone normalization and no
// truncation to day boundaries.
func (r TimeRange) Contains(t time.Time) bool {
	ms := t.UnixMilli()
	return ms >= r.From.UnixMilli() && ms <= r.To.UnixMilli()
}

// SelectRelevant applies the core filter pipeline: the creation-time window
// (skipped when r is unbounded) and the keyword-presence predicate over
// title or description. Pure and deterministic; the input is not mutated.
func SelectRelevant(items []*Item, r TimeRange) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if r.Bounded() && !r.Contains(item.CreatedAt) {
			continue
		}
		if !matchesKeyword(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesKeyword(item *Item) bool {
	return strings.Contains(strings.ToLower(item.Title), Keyword) ||
		strings.Contains(strings.ToLower(item.Description), Keyword)
}

// Narrow is the display-layer filter, downstream of SelectRelevant: a
// free-text query matched case-insensitively against title, description and
// course title, ANDed with an exact kind match. KindAll (or empty) disables
// the kind predicate. Recomputed from scratch on every call.
func Narrow(items []*Item, query string, kind Kind) []*Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		if kind != "" && kind != KindAll && item.Kind != kind {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item *Item, query string) bool {
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Description), query) ||
		strings.Contains(strings.ToLower(item.CourseTitle), query)
}

// Courses returns the distinct courses referenced by items, in first-seen
// order. Courses are fetch-scoped, so this is the only way the presentation
// layer can enumerate them.
func Courses(items []*Item) []Course {
	seen := make(map[string]bool, len(items))
	courses := make([]Course, 0, len(items))
	for _, item := range items {
		if seen[item.CourseID] {
			continue
		}
		seen[item.CourseID] = true
		courses = append(courses, Course{ID: item.CourseID, Name: item.CourseTitle})
	}
	return courses
}
