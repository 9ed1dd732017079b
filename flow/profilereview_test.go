package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diversion-social/diversion-go/domain"
)

type fakeProfiles struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfiles) GetMine(context.Context) (*domain.Profile, error) {
	return f.profile, f.err
}

func TestLoadProfileReview(t *testing.T) {
	profiles := &fakeProfiles{profile: &domain.Profile{UserID: 1, DisplayName: "Casey"}}
	selections := &fakeSelections{mine: []domain.UserInterest{
		{ID: 1, SubInterest: domain.SubInterest{ID: 10, Name: "Board Games"}},
	}}

	review, err := LoadProfileReview(context.Background(), profiles, selections)
	require.NoError(t, err)
	require.NotNil(t, review.Profile)
	assert.Equal(t, "Casey", review.Profile.DisplayName)
	assert.Len(t, review.Interests, 1)
}

func TestLoadProfileReviewNoProfileYet(t *testing.T) {
	review, err := LoadProfileReview(context.Background(), &fakeProfiles{}, &fakeSelections{})
	require.NoError(t, err)
	assert.Nil(t, review.Profile)
	assert.Empty(t, review.Interests)
}

func TestLoadProfileReviewFailure(t *testing.T) {
	errDown := errors.New("profile service down")
	review, err := LoadProfileReview(context.Background(),
		&fakeProfiles{err: errDown},
		&fakeSelections{mine: []domain.UserInterest{{ID: 1}}},
	)
	require.ErrorIs(t, err, errDown)
	assert.Nil(t, review, "no partially rendered review on failure")
}
