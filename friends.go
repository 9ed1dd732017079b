package diversion

import (
	"context"
	"fmt"
	"net/url"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const friendshipPath = "/api/friendships"

// FriendService manages friendships and user search. Friendships are
// conceptually symmetric; the API reports them from the current user's
// point of view.
type FriendService struct {
	rest *rest.Client
}

// List returns the current user's friends.
func (s *FriendService) List(ctx context.Context) ([]domain.Friendship, error) {
	var friends []domain.Friendship
	if err := s.rest.Get(ctx, friendshipPath+"/my", &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// Search finds users by name. Callers apply the minimum-length and
// debounce rules (see flow.FriendSearch); the service issues the query
// as given.
func (s *FriendService) Search(ctx context.Context, query string) ([]domain.UserSearchResult, error) {
	var results []domain.UserSearchResult
	path := friendshipPath + "/search?query=" + url.QueryEscape(query)
	if err := s.rest.Get(ctx, path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Add creates a friendship with the given user.
func (s *FriendService) Add(ctx context.Context, friendID int) (*domain.Friendship, error) {
	body := struct {
		FriendID int `json:"friendId"`
	}{FriendID: friendID}

	var created domain.Friendship
	if err := s.rest.Post(ctx, friendshipPath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Remove deletes the friendship with the given user.
func (s *FriendService) Remove(ctx context.Context, friendID int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("%s/%d", friendshipPath, friendID))
}

// Check reports whether the current user and the given user are friends.
func (s *FriendService) Check(ctx context.Context, userID int) (bool, error) {
	var areFriends bool
	if err := s.rest.Get(ctx, fmt.Sprintf("%s/check/%d", friendshipPath, userID), &areFriends); err != nil {
		return false, err
	}
	return areFriends, nil
}
