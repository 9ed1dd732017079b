package diversion

import (
	"context"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

// ActivityService reads the friend activity feed: an immutable,
// time-ordered record of friends' actions. The server supplies the
// ordering (newest first); the client does not re-sort.
type ActivityService struct {
	rest *rest.Client
}

// Feed returns the current user's friend activity feed.
func (s *ActivityService) Feed(ctx context.Context) ([]domain.ActivityItem, error) {
	var items []domain.ActivityItem
	if err := s.rest.Get(ctx, "/api/activity/feed", &items); err != nil {
		return nil, err
	}
	return items, nil
}
