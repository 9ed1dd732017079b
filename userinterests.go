package diversion

import (
	"context"
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const userInterestPath = "/api/userinterests"

// UserInterestService manages the current user's selected interests,
// the join between the user and sub-interest tags. Uniqueness of the
// (user, subInterest) pair is enforced server-side; adding a duplicate
// surfaces as an API error.
type UserInterestService struct {
	rest *rest.Client
}

// List returns the current user's selected interests.
func (s *UserInterestService) List(ctx context.Context) ([]domain.UserInterest, error) {
	var interests []domain.UserInterest
	if err := s.rest.Get(ctx, userInterestPath, &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

// Add selects a sub-interest for the current user.
func (s *UserInterestService) Add(ctx context.Context, subInterestID int) (*domain.UserInterest, error) {
	body := struct {
		SubInterestID int `json:"subInterestId"`
	}{SubInterestID: subInterestID}

	var created domain.UserInterest
	if err := s.rest.Post(ctx, userInterestPath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Remove deletes a selection by its user-interest ID.
func (s *UserInterestService) Remove(ctx context.Context, userInterestID int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("%s/%d", userInterestPath, userInterestID))
}

// RemoveBySubInterest deletes the current user's selection of the given
// sub-interest, for callers that only know the tag.
func (s *UserInterestService) RemoveBySubInterest(ctx context.Context, subInterestID int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("%s/subinterest/%d", userInterestPath, subInterestID))
}
