package diversion

import (
	"context"
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

// InterestService reads the interest taxonomy: broad categories and the
// sub-interest tags nested under them. The taxonomy is read-only
// reference data for the client.
type InterestService struct {
	rest *rest.Client
}

// List returns all interest categories without their sub-interests.
func (s *InterestService) List(ctx context.Context) ([]domain.Interest, error) {
	var interests []domain.Interest
	if err := s.rest.Get(ctx, "/api/interests", &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

// ListWithSubInterests returns all categories with their sub-interest
// lists populated, as used by the browse screen.
func (s *InterestService) ListWithSubInterests(ctx context.Context) ([]domain.Interest, error) {
	var interests []domain.Interest
	if err := s.rest.Get(ctx, "/api/interests/with_subinterests", &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

// Get returns a single category including its sub-interests.
func (s *InterestService) Get(ctx context.Context, id int) (*domain.Interest, error) {
	var interest domain.Interest
	if err := s.rest.Get(ctx, fmt.Sprintf("/api/interests/%d", id), &interest); err != nil {
		return nil, err
	}
	return &interest, nil
}

// GetSubInterest returns a single sub-interest with its parent category
// reference populated.
func (s *InterestService) GetSubInterest(ctx context.Context, id int) (*domain.SubInterest, error) {
	var sub domain.SubInterest
	if err := s.rest.Get(ctx, fmt.Sprintf("/api/subinterests/%d", id), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
