package diversion

import (
	"context"
	"errors"
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const profilePath = "/api/userprofile"

// ProfileService manages user profiles. Each user has at most one
// profile; absence of a profile is a valid state, not an error.
type ProfileService struct {
	rest *rest.Client
}

// GetMine returns the current user's profile, or nil when no profile has
// been created yet (the API answers 404).
func (s *ProfileService) GetMine(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := s.rest.Get(ctx, profilePath+"/me", &profile); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Get returns another user's profile by user ID, or nil when that user
// has no profile.
func (s *ProfileService) Get(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/%d", profilePath, userID), &profile); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create creates the current user's profile from the setup form.
func (s *ProfileService) Create(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var created domain.Profile
	if err := s.rest.Post(ctx, profilePath, profile, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the current user's profile. The API answers 204.
func (s *ProfileService) Update(ctx context.Context, profile domain.Profile) error {
	return s.rest.Put(ctx, profilePath, profile, nil)
}

// Delete removes the current user's profile.
func (s *ProfileService) Delete(ctx context.Context) error {
	return s.rest.Delete(ctx, profilePath)
}
