package display

import (
	"github.com/diversion-social/diversion-go/domain"
)

// UserInterestsFromSubInterests adapts the flat sub-interest shape
// returned for another user's profile into the nested UserInterest shape
// the interest badges render uniformly. The flat rows carry the parent
// category as an inline reference; the adapted rows reuse the row ID as
// the join ID, which is all the badge rendering needs. A nil input
// yields an empty collection.
func UserInterestsFromSubInterests(interests []domain.SubInterest) []domain.UserInterest {
	adapted := make([]domain.UserInterest, 0, len(interests))
	for _, sub := range interests {
		adapted = append(adapted, domain.UserInterest{
			ID: sub.ID,
			SubInterest: domain.SubInterest{
				ID:       sub.ID,
				Name:     sub.Name,
				Interest: sub.Interest,
			},
		})
	}
	return adapted
}
