package flow

import (
	"context"

	"github.com/diversion-social/diversion-go/domain"
)

// ProfileReader is the slice of the API the profile review screen reads
// the current user's profile through.
type ProfileReader interface {
	GetMine(ctx context.Context) (*domain.Profile, error)
}

// ProfileReview is the loaded state of the onboarding review screen: the
// freshly created profile alongside the interests just selected.
type ProfileReview struct {
	// Profile is nil when the user has not completed profile setup.
	Profile *domain.Profile

	// Interests is the user's selected interests.
	Interests []domain.UserInterest
}

// LoadProfileReview fetches the profile and the selected interests
// jointly; the screen renders only once both have settled, and a failure
// of either surfaces as the single returned error.
func LoadProfileReview(ctx context.Context, profiles ProfileReader, selections SelectionAccess) (*ProfileReview, error) {
	review := &ProfileReview{}

	err := All(ctx,
		func(ctx context.Context) error {
			profile, loadErr := profiles.GetMine(ctx)
			if loadErr != nil {
				return loadErr
			}
			review.Profile = profile
			return nil
		},
		func(ctx context.Context) error {
			interests, loadErr := selections.List(ctx)
			if loadErr != nil {
				return loadErr
			}
			review.Interests = interests
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return review, nil
}
