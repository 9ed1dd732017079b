package diversion

import (
	"github.com/diversion-social/diversion-go/rest"
)

// Client is the top-level Diversion API client. Each exported field is a
// service group covering one REST resource; all groups share a single
// transport and therefore a single cookie session.
type Client struct {
	rest *rest.Client

	// Auth covers /api/auth.
	Auth *AuthService

	// Profiles covers /api/userprofile.
	Profiles *ProfileService

	// Interests covers /api/interests and /api/subinterests.
	Interests *InterestService

	// UserInterests covers /api/userinterests.
	UserInterests *UserInterestService

	// Events covers /api/events.
	Events *EventService

	// Attendance covers /api/eventattendees.
	Attendance *AttendanceService

	// Friends covers /api/friendships.
	Friends *FriendService

	// Activity covers /api/activity.
	Activity *ActivityService
}

// New creates a Diversion client for the API rooted at baseURL.
// Options are forwarded to the underlying transport.
//
// Example:
//
//	client, err := diversion.New("https://diversion.example.com",
//	    rest.WithLogger(slog.Default()),
//	)
func New(baseURL string, opts ...rest.Option) (*Client, error) {
	transport, err := rest.New(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(transport), nil
}

// NewWithTransport creates a Diversion client over an existing transport.
// This is primarily used for testing with a preconfigured *rest.Client.
func NewWithTransport(transport *rest.Client) *Client {
	c := &Client{rest: transport}
	c.Auth = &AuthService{rest: transport}
	c.Profiles = &ProfileService{rest: transport}
	c.Interests = &InterestService{rest: transport}
	c.UserInterests = &UserInterestService{rest: transport}
	c.Events = &EventService{rest: transport}
	c.Attendance = &AttendanceService{rest: transport}
	c.Friends = &FriendService{rest: transport}
	c.Activity = &ActivityService{rest: transport}
	return c
}
