package diversion

import (
	"context"
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const eventPath = "/api/events"

// EventService manages community events. Only the organizer may edit or
// delete an event; the client-side organizer check is advisory UX and the
// server remains the authority.
type EventService struct {
	rest *rest.Client
}

// List returns all upcoming events.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.rest.Get(ctx, eventPath, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get returns a single event with attendees and the resolved interest tag.
func (s *EventService) Get(ctx context.Context, id int) (*domain.Event, error) {
	var event domain.Event
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/%d", eventPath, id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByInterest returns events filed under the given sub-interest tag.
func (s *EventService) ListByInterest(ctx context.Context, interestTagID int) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/interest/%d", eventPath, interestTagID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListMine returns events organized by the current user.
func (s *EventService) ListMine(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.rest.Get(ctx, eventPath+"/my", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListByUser returns events organized by another user.
func (s *EventService) ListByUser(ctx context.Context, userID int) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/user/%d", eventPath, userID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListRSVPd returns events the current user has responded to.
func (s *EventService) ListRSVPd(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.rest.Get(ctx, eventPath+"/rsvpd", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create creates a new event organized by the current user.
func (s *EventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	var created domain.Event
	if err := s.rest.Post(ctx, eventPath, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an event's details. The API answers 204.
func (s *EventService) Update(ctx context.Context, id int, input domain.EventInput) error {
	return s.rest.Put(ctx, fmt.Sprintf("%s/%d", eventPath, id), input, nil)
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("%s/%d", eventPath, id))
}
