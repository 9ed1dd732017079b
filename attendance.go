package diversion

import (
	"context"
	"errors"
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const attendancePath = "/api/eventattendees"

// AttendanceService manages RSVP records. One record exists per
// (user, event); callers decide between RSVP and Update by asking
// GetMineForEvent first.
type AttendanceService struct {
	rest *rest.Client
}

// ListForEvent returns the attendee list of an event.
func (s *AttendanceService) ListForEvent(ctx context.Context, eventID int) ([]domain.Attendee, error) {
	var attendees []domain.Attendee
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/event/%d", attendancePath, eventID), &attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

// ListMine returns all of the current user's RSVP records.
func (s *AttendanceService) ListMine(ctx context.Context) ([]domain.Attendance, error) {
	var attendance []domain.Attendance
	if err := s.rest.Get(ctx, attendancePath+"/my", &attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// GetMineForEvent returns the current user's RSVP record for an event,
// or nil when the user has not responded (the API answers 404).
func (s *AttendanceService) GetMineForEvent(ctx context.Context, eventID int) (*domain.Attendance, error) {
	var attendance domain.Attendance
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/event/%d/me", attendancePath, eventID), &attendance); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

// RSVP creates the current user's attendance record for an event.
func (s *AttendanceService) RSVP(ctx context.Context, eventID int, status domain.RSVPStatus) (*domain.Attendance, error) {
	body := struct {
		EventID int               `json:"eventId"`
		Status  domain.RSVPStatus `json:"status"`
	}{EventID: eventID, Status: status}

	var created domain.Attendance
	if err := s.rest.Post(ctx, attendancePath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update changes the status of an existing attendance record.
func (s *AttendanceService) Update(ctx context.Context, attendanceID int, status domain.RSVPStatus) error {
	body := struct {
		Status domain.RSVPStatus `json:"status"`
	}{Status: status}

	return s.rest.Put(ctx, fmt.Sprintf("%s/%d", attendancePath, attendanceID), body, nil)
}

// Delete cancels an RSVP by removing the attendance record.
func (s *AttendanceService) Delete(ctx context.Context, attendanceID int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("%s/%d", attendancePath, attendanceID))
}
