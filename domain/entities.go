package domain

import "time"

// Session is the client-side session marker persisted after a successful
// login or registration. Authentication itself is cookie based; no token
// is stored on the client.
type Session struct {
	// Username is the logged-in user's name.
	Username string `json:"username"`
}

// Credentials is the payload for a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile describes a user's public profile. One profile exists per user;
// it is created through the setup form and mutated through the update form.
type Profile struct {
	// UserID identifies the owning user.
	UserID int `json:"userId"`

	// DisplayName is the name shown across the application.
	DisplayName string `json:"displayName"`

	// Bio is optional free-form text.
	Bio string `json:"bio,omitempty"`

	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	// DOB is the date of birth in the API's date format. Optional.
	DOB string `json:"dob,omitempty"`

	// ProfilePicURL points at the user's profile picture. Optional.
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

// InterestRef is a minimal reference to an interest category.
type InterestRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Interest is a broad interest category containing sub-interests.
// Read-only reference data for the client.
type Interest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// SubInterests is populated by the with_subinterests listing and by
	// the single-interest lookup; empty elsewhere.
	SubInterests []SubInterest `json:"subInterests,omitempty"`
}

// SubInterest is a specific tag nested under exactly one Interest.
type SubInterest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Interest is the parent category reference. Populated by the
	// sub-interest detail endpoint and by the flat per-user listing;
	// nil when the sub-interest appears nested under its parent.
	Interest *InterestRef `json:"interest,omitempty"`
}

// UserInterest joins a user to a selected SubInterest. Uniqueness of the
// (user, subInterest) pair is enforced server-side.
type UserInterest struct {
	ID          int         `json:"id"`
	SubInterest SubInterest `json:"subInterest"`
}

// Event is a community event organized by a user. Location fields follow
// the structured city/state shape; online events carry a meeting URL
// instead of an address.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`

	EventType EventType `json:"eventType"`

	// MeetingURL is set for online events.
	MeetingURL string `json:"meetingUrl,omitempty"`

	// StreetAddress, City and State are set for in-person events.
	StreetAddress string `json:"streetAddress,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`

	// InterestTagID is the sub-interest the event is filed under.
	InterestTagID int `json:"interestTagId"`

	// InterestTag is the resolved sub-interest reference, populated on
	// detail responses.
	InterestTag *SubInterest `json:"interestTag,omitempty"`

	RequiresRSVP bool `json:"requiresRsvp"`

	OrganizerID       int    `json:"organizerId"`
	OrganizerUsername string `json:"organizerUsername"`

	// Attendees is populated on detail responses; AttendeeCount is the
	// server-computed aggregate and is authoritative.
	Attendees     []Attendee `json:"attendees,omitempty"`
	AttendeeCount int        `json:"attendeeCount"`
}

// EventInput is the payload for creating or updating an event.
type EventInput struct {
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	EventType     EventType `json:"eventType"`
	MeetingURL    string    `json:"meetingUrl,omitempty"`
	StreetAddress string    `json:"streetAddress,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	InterestTagID int       `json:"interestTagId"`
	RequiresRSVP  bool      `json:"requiresRsvp"`
}

// Attendee is a user appearing on an event's attendee list.
type Attendee struct {
	ID       int        `json:"id"`
	UserID   int        `json:"userId"`
	Username string     `json:"username"`
	Status   RSVPStatus `json:"status"`
}

// Attendance is a user's RSVP record for an event. One record exists per
// (user, event); it is created by the first RSVP, mutated by status
// changes and destroyed by cancelling.
type Attendance struct {
	ID      int        `json:"id"`
	EventID int        `json:"eventId"`
	UserID  int        `json:"userId"`
	Status  RSVPStatus `json:"status"`
}

// Friendship links the current user to a friend. Conceptually symmetric;
// the API reports it from the current user's point of view.
type Friendship struct {
	ID                int    `json:"id"`
	FriendID          int    `json:"friendId"`
	FriendUsername    string `json:"friendUsername"`
	FriendDisplayName string `json:"friendDisplayName,omitempty"`
}

// UserSearchResult is a row returned by the friend search endpoint.
type UserSearchResult struct {
	UserID      int    `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`

	// IsFriend reports whether the current user is already friends with
	// this user.
	IsFriend bool `json:"isFriend"`
}

// ActivityItem is an immutable record in the friend activity feed.
// Fields beyond ActivityType, UserID and Timestamp are type-specific:
// event activities carry EventID/EventTitle (and RSVPStatus for RSVPs),
// interest activities carry the sub-interest and parent interest names.
type ActivityItem struct {
	ActivityType ActivityType `json:"activityType"`

	UserID      int    `json:"userId"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	Timestamp time.Time `json:"timestamp"`

	EventID    int        `json:"eventId,omitempty"`
	EventTitle string     `json:"eventTitle,omitempty"`
	RSVPStatus RSVPStatus `json:"rsvpStatus,omitempty"`

	SubInterestID   int    `json:"subInterestId,omitempty"`
	SubInterestName string `json:"subInterestName,omitempty"`
	InterestName    string `json:"interestName,omitempty"`
}
