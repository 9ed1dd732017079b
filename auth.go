package diversion

import (
	"context"

	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/rest"
)

const authPath = "/api/auth"

// AuthService handles registration, login and logout. A successful login
// or registration sets the session cookie on the shared transport; the
// returned Session is the client-side marker callers persist.
type AuthService struct {
	rest *rest.Client
}

// Register creates a new account and starts a session for it.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	var session domain.Session
	if err := s.rest.Post(ctx, authPath+"/register", reg, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login authenticates with the given credentials. Invalid credentials
// surface as a message error from the API.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	var session domain.Session
	if err := s.rest.Post(ctx, authPath+"/login", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout ends the server-side session. The caller is responsible for
// clearing its persisted session marker.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.rest.Post(ctx, authPath+"/logout", nil, nil)
}
