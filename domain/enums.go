package domain

// EventType distinguishes how an event is held.
type EventType string

const (
	// EventOnline is an event held remotely via a meeting URL.
	EventOnline EventType = "Online"

	// EventInPerson is an event held at a physical street address.
	EventInPerson EventType = "InPerson"
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	return string(t)
}

// RSVPStatus is a user's attendance response to an event.
type RSVPStatus string

const (
	// RSVPGoing indicates the user plans to attend.
	RSVPGoing RSVPStatus = "Going"

	// RSVPMaybe indicates the user may attend.
	RSVPMaybe RSVPStatus = "Maybe"

	// RSVPNotGoing indicates the user does not plan to attend.
	// The wire value contains a space; this matches the API exactly.
	RSVPNotGoing RSVPStatus = "Not Going"
)

// String returns the string representation of the RSVPStatus.
func (s RSVPStatus) String() string {
	return string(s)
}

// ActivityType identifies the kind of action recorded in the activity feed.
// The set is closed on the server side; clients must still tolerate values
// outside this set and fall back to a generic rendering.
type ActivityType string

const (
	// ActivityEventCreated records that a user created an event.
	ActivityEventCreated ActivityType = "EventCreated"

	// ActivityEventRSVP records that a user responded to an event.
	ActivityEventRSVP ActivityType = "EventRSVP"

	// ActivityInterestAdded records that a user added a sub-interest.
	ActivityInterestAdded ActivityType = "InterestAdded"
)

// String returns the string representation of the ActivityType.
func (t ActivityType) String() string {
	return string(t)
}
