package display

import (
	"fmt"

	"github.com/diversion-social/diversion-go/domain"
)

// ActivityDisplayName returns the name to show for a feed item's actor:
// the display name when the user has a profile, their username otherwise,
// and a neutral fallback when the record carries neither.
func ActivityDisplayName(item domain.ActivityItem) string {
	if item.DisplayName != "" {
		return item.DisplayName
	}
	if item.Username != "" {
		return item.Username
	}
	return "User"
}

// RSVPText returns the feed verb phrase for an RSVP status. Unrecognized
// statuses get a neutral fallback so a new server-side status never
// breaks rendering.
func RSVPText(status domain.RSVPStatus) string {
	switch status {
	case domain.RSVPGoing:
		return "is going to"
	case domain.RSVPMaybe:
		return "might attend"
	case domain.RSVPNotGoing:
		return "is not going to"
	default:
		return "RSVPed to"
	}
}

// RSVPBadgeColor maps an RSVP status onto the badge palette.
func RSVPBadgeColor(status domain.RSVPStatus) string {
	switch status {
	case domain.RSVPGoing:
		return "success"
	case domain.RSVPMaybe:
		return "warning"
	case domain.RSVPNotGoing:
		return "secondary"
	default:
		return "info"
	}
}

// ActivityMessage renders a feed item as a single line of text. The
// activity type set is closed on the server; the default arm keeps an
// unknown type from breaking the feed.
func ActivityMessage(item domain.ActivityItem) string {
	name := ActivityDisplayName(item)

	switch item.ActivityType {
	case domain.ActivityEventCreated:
		return fmt.Sprintf("%s created a new event: %s", name, item.EventTitle)
	case domain.ActivityEventRSVP:
		return fmt.Sprintf("%s %s %s", name, RSVPText(item.RSVPStatus), item.EventTitle)
	case domain.ActivityInterestAdded:
		return fmt.Sprintf("%s added interest: %s (%s)", name, item.SubInterestName, item.InterestName)
	default:
		return fmt.Sprintf("%s did something", name)
	}
}
