// Package validate holds form validation for user-submitted input.
// Validators accumulate every applicable violation instead of stopping at
// the first, so a form can surface all of its problems at once.
package validate

import (
	"strings"
	"time"

	"github.com/diversion-social/diversion-go/domain"
)

// EventForm is the raw event create/edit form as entered by the user.
// Date-time fields are kept as strings because they arrive from free-form
// input; validation parses them.
type EventForm struct {
	Title         string
	StartDateTime string
	EndDateTime   string
	InterestTagID string
	EventType     domain.EventType
	MeetingURL    string
	City          string
	State         string
}

// eventFormLayouts are the accepted date-time input formats: RFC 3339 as
// produced by API round-trips, and the shorter local form produced by
// datetime inputs.
var eventFormLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ValidateEventForm checks an event form and returns every violation as a
// human-readable string, in a stable order. An empty result means the
// form is valid. Range checks against the clock run at call time, so a
// form validated twice around midnight can legitimately change verdicts.
func ValidateEventForm(form EventForm) []string {
	return validateEventFormAt(form, time.Now())
}

func validateEventFormAt(form EventForm, now time.Time) []string {
	var errs []string

	if strings.TrimSpace(form.Title) == "" {
		errs = append(errs, "Title is required")
	}

	if form.StartDateTime == "" {
		errs = append(errs, "Start date and time are required")
	}
	if form.EndDateTime == "" {
		errs = append(errs, "End date and time are required")
	}

	start, startOK := parseEventTime(form.StartDateTime)
	end, endOK := parseEventTime(form.EndDateTime)

	// Comparisons only apply when both sides parse; the emptiness errors
	// above already cover missing input.
	if startOK && endOK && !end.After(start) {
		errs = append(errs, "End date must be after start date")
	}
	if startOK && !start.After(now) {
		errs = append(errs, "Start date must be in the future")
	}

	if form.InterestTagID == "" {
		errs = append(errs, "Please select an interest tag")
	}

	if form.EventType == domain.EventOnline && strings.TrimSpace(form.MeetingURL) == "" {
		errs = append(errs, "Meeting URL is required for online events")
	}
	if form.EventType == domain.EventInPerson && strings.TrimSpace(form.City) == "" {
		errs = append(errs, "City is required for in-person events")
	}
	if form.EventType == domain.EventInPerson && strings.TrimSpace(form.State) == "" {
		errs = append(errs, "State is required for in-person events")
	}

	return errs
}

// parseEventTime tries each accepted layout in order.
func parseEventTime(value string) (time.Time, bool) {
	for _, layout := range eventFormLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
