// Package admin holds the filtering, sorting and aggregation run for the staff view.
// Everything here is a pure function of the snapshot passed in.
package admin

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	FilterAll = "all"

	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortPriority = "priority"
)

var priorityRank = map[string]int{"high": 3, "medium": 2, "low": 1}

const defaultPriorityRank = 2

// Record is implemented by models.Appointment and models.Contact.
type Record interface {
	SearchFields() []string
	StatusOrDefault() string
	// PriorityOrDefault returns false for records that carry no priority at all.
	PriorityOrDefault() (string, bool)
	SortDate() (time.Time, bool)
}

// Query holds the staff view parameters.
type Query struct {
	SearchTerm     string
	StatusFilter   string
	PriorityFilter string
	SortBy         string
}

// InvalidQueryError reports an unusable query parameter.
type InvalidQueryError struct {
	Field string
	Value string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseQuery applies defaults and rejects unknown sort keys.
func ParseQuery(search, status, priority, sortBy string) (Query, error) {
	q := Query{
		SearchTerm:     strings.TrimSpace(search),
		StatusFilter:   strings.TrimSpace(status),
		PriorityFilter: strings.TrimSpace(priority),
		SortBy:         strings.TrimSpace(sortBy),
	}
	if q.StatusFilter == "" {
		q.StatusFilter = FilterAll
	}
	if q.PriorityFilter == "" {
		q.PriorityFilter = FilterAll
	}
	if q.SortBy == "" {
		q.SortBy = SortNewest
	}
	switch q.SortBy {
	case SortNewest, SortOldest, SortPriority:
	default:
		return Query{}, &InvalidQueryError{Field: "sort", Value: q.SortBy}
	}
	if q.PriorityFilter != FilterAll {
		if _, ok := priorityRank[q.PriorityFilter]; !ok {
			return Query{}, &InvalidQueryError{Field: "priority", Value: q.PriorityFilter}
		}
	}
	return q, nil
}

// FilterAndSort returns the matching records in query order. The input slice is not modified.
// Sorting is stable, so tied records keep their input order.
func FilterAndSort[T Record](records []T, q Query) []T {
	out := make([]T, 0, len(records))
	term := strings.ToLower(q.SearchTerm)
	for _, r := range records {
		if matchesSearch(r, term) && matchesStatus(r, q.StatusFilter) && matchesPriority(r, q.PriorityFilter) {
			out = append(out, r)
		}
	}

	switch q.SortBy {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b T) int { return sortDate(b).Compare(sortDate(a)) })
	case SortOldest:
		slices.SortStableFunc(out, func(a, b T) int { return sortDate(a).Compare(sortDate(b)) })
	case SortPriority:
		slices.SortStableFunc(out, func(a, b T) int { return rank(b) - rank(a) })
	}
	return out
}

func matchesSearch(r Record, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesStatus(r Record, filter string) bool {
	return filter == "" || filter == FilterAll || r.StatusOrDefault() == filter
}

func matchesPriority(r Record, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	p, ok := r.PriorityOrDefault()
	if !ok {
		return true
	}
	return p == filter
}

// unparseable dates sort as the zero time
func sortDate(r Record) time.Time {
	t, _ := r.SortDate()
	return t
}

func rank(r Record) int {
	p, _ := r.PriorityOrDefault()
	if n, ok := priorityRank[p]; ok {
		return n
	}
	return defaultPriorityRank
}
