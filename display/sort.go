package display

import (
	"slices"

	"github.com/diversion-social/diversion-go/domain"
)

// SortEventsByDate returns the events ordered by ascending start time.
// The sort is stable and operates on a copy; the input slice and its
// elements are never mutated.
func SortEventsByDate(events []domain.Event) []domain.Event {
	if len(events) == 0 {
		return []domain.Event{}
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b domain.Event) int {
		return a.StartDateTime.Compare(b.StartDateTime)
	})
	return sorted
}
