// Package filter holds the criteria structs and pure predicates used by the
// dashboards. Every function returns a new slice that keeps the input order.
package filter

import (
	"strings"
	"time"
)

// All is the sentinel that disables an equality filter.
const All = "all"

// DateBucket partitions dates relative to now.
type DateBucket string

const (
	DateAll      DateBucket = "all"
	DateToday    DateBucket = "today"
	DateUpcoming DateBucket = "upcoming"
	DatePast     DateBucket = "past"
)

// ParseDateBucket maps a query value to a bucket. Unknown values mean DateAll.
func ParseDateBucket(s string) DateBucket {
	switch b := DateBucket(strings.ToLower(strings.TrimSpace(s))); b {
	case DateToday, DateUpcoming, DatePast:
		return b
	}
	return DateAll
}

// ActiveState filters on an entity's active flag.
type ActiveState string

const (
	ActiveAny      ActiveState = "all"
	ActiveOnly     ActiveState = "active"
	ActiveInactive ActiveState = "inactive"
)

// ParseActiveState maps a query value to an ActiveState. Unknown values mean ActiveAny.
func ParseActiveState(s string) ActiveState {
	switch a := ActiveState(strings.ToLower(strings.TrimSpace(s))); a {
	case ActiveOnly, ActiveInactive:
		return a
	}
	return ActiveAny
}

func (a ActiveState) matches(active bool) bool {
	switch a {
	case ActiveOnly:
		return active
	case ActiveInactive:
		return !active
	}
	return true
}

// Apply returns the items that satisfy keep, in their original order. The
// result is never nil.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchesText reports whether any field contains query, ignoring case. An
// empty query matches everything.
func MatchesText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Equals reports whether v satisfies an equality filter. An empty or "all"
// filter matches everything.
func Equals[S ~string](want, v S) bool {
	if !Constrains(want) {
		return true
	}
	return strings.EqualFold(string(want), string(v))
}

// Constrains reports whether an equality filter value is active.
func Constrains[S ~string](want S) bool {
	w := strings.TrimSpace(string(want))
	return w != "" && !strings.EqualFold(w, All)
}

// InBucket reports whether t falls in bucket b relative to now. A zero t only
// matches DateAll.
func InBucket(t time.Time, b DateBucket, now time.Time) bool {
	if b == "" || b == DateAll {
		return true
	}
	if t.IsZero() {
		return false
	}
	switch b {
	case DateToday:
		return sameDay(t, now)
	case DateUpcoming:
		return !t.Before(now)
	case DatePast:
		return t.Before(now)
	}
	return true
}

func sameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}
