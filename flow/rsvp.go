package flow

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/diversion-social/diversion-go/domain"
)

// ErrActionInFlight is returned when an RSVP action is attempted while a
// previous one (including its reload) has not resolved yet. A UI would
// disable its buttons here; the flow enforces the rule directly.
var ErrActionInFlight = errors.New("rsvp action already in flight")

// EventReader is the slice of the API the RSVP flow reloads event detail
// through.
type EventReader interface {
	Get(ctx context.Context, id int) (*domain.Event, error)
}

// AttendanceAccess is the slice of the API the RSVP flow manages the
// user's attendance record through.
type AttendanceAccess interface {
	GetMineForEvent(ctx context.Context, eventID int) (*domain.Attendance, error)
	RSVP(ctx context.Context, eventID int, status domain.RSVPStatus) (*domain.Attendance, error)
	Update(ctx context.Context, attendanceID int, status domain.RSVPStatus) error
	Delete(ctx context.Context, attendanceID int) error
}

// RSVPFlow drives one user's attendance state for one event:
// no record, Going, Maybe or Not Going. Every successful mutation is
// followed by a full reload of the event and the attendance record; the
// server owns the aggregate counts and the client never patches them
// locally.
type RSVPFlow struct {
	events     EventReader
	attendance AttendanceAccess

	eventID int

	event *domain.Event
	mine  *domain.Attendance

	// busy serializes user actions; a second action while one is in
	// flight fails fast instead of issuing a request.
	busy atomic.Bool
}

// NewRSVPFlow creates the flow for one event. Call Load before acting.
func NewRSVPFlow(events EventReader, attendance AttendanceAccess, eventID int) *RSVPFlow {
	return &RSVPFlow{
		events:     events,
		attendance: attendance,
		eventID:    eventID,
	}
}

// Load fetches the event detail and the user's attendance record
// jointly. Both must succeed for the screen to render.
func (f *RSVPFlow) Load(ctx context.Context) error {
	return f.reload(ctx)
}

// Event returns the last loaded event detail, or nil before Load.
func (f *RSVPFlow) Event() *domain.Event {
	return f.event
}

// Attendance returns the user's current attendance record, or nil when
// the user has not responded.
func (f *RSVPFlow) Attendance() *domain.Attendance {
	return f.mine
}

// Busy reports whether an action (and its reload) is in flight.
func (f *RSVPFlow) Busy() bool {
	return f.busy.Load()
}

// IsOrganizer reports whether the given user organized the event. The
// check selects which controls the UI offers; authorization itself is
// enforced server-side.
func (f *RSVPFlow) IsOrganizer(userID int) bool {
	return f.event != nil && f.event.OrganizerID == userID
}

// HandleRSVP responds to the event with the given status: the first
// response creates the attendance record, later ones update it in place.
// After the mutation the event detail is fully reloaded.
func (f *RSVPFlow) HandleRSVP(ctx context.Context, status domain.RSVPStatus) error {
	if !f.busy.CompareAndSwap(false, true) {
		return ErrActionInFlight
	}
	defer f.busy.Store(false)

	if f.mine == nil {
		if _, err := f.attendance.RSVP(ctx, f.eventID, status); err != nil {
			return err
		}
	} else {
		if err := f.attendance.Update(ctx, f.mine.ID, status); err != nil {
			return err
		}
	}

	return f.reload(ctx)
}

// Cancel withdraws the user's RSVP by deleting the attendance record,
// then reloads. Cancelling when no record exists is a no-op.
func (f *RSVPFlow) Cancel(ctx context.Context) error {
	if !f.busy.CompareAndSwap(false, true) {
		return ErrActionInFlight
	}
	defer f.busy.Store(false)

	if f.mine == nil {
		return nil
	}

	if err := f.attendance.Delete(ctx, f.mine.ID); err != nil {
		return err
	}

	return f.reload(ctx)
}

// reload refreshes the event detail and attendance record concurrently.
func (f *RSVPFlow) reload(ctx context.Context) error {
	var (
		event *domain.Event
		mine  *domain.Attendance
	)

	err := All(ctx,
		func(ctx context.Context) error {
			loaded, loadErr := f.events.Get(ctx, f.eventID)
			if loadErr != nil {
				return loadErr
			}
			event = loaded
			return nil
		},
		func(ctx context.Context) error {
			loaded, loadErr := f.attendance.GetMineForEvent(ctx, f.eventID)
			if loadErr != nil {
				return loadErr
			}
			mine = loaded
			return nil
		},
	)
	if err != nil {
		return err
	}

	f.event = event
	f.mine = mine
	return nil
}
