package display

import (
	"fmt"
	"time"
)

// TimeAgo buckets the elapsed time since t into a short relative label:
// "just now" under a minute, then minutes, hours and days, falling back
// to a plain date once the activity is a week old. The result is always
// computed against the current clock, never cached.
func TimeAgo(t time.Time) string {
	return timeAgoAt(t, time.Now())
}

// timeAgoAt is TimeAgo against an explicit reference time.
func timeAgoAt(t, now time.Time) string {
	elapsed := now.Sub(t)

	mins := int(elapsed.Minutes())
	hours := int(elapsed.Hours())
	days := int(elapsed.Hours() / 24)

	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return FormatDate(t)
	}
}

// FormatDateTime renders a full date and time for event detail headers,
// e.g. "Saturday, June 14, 2025 at 6:30 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

// FormatDate renders a short numeric date, e.g. "6/14/2025".
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// FormatTime renders a clock time, e.g. "06:30 PM".
func FormatTime(t time.Time) string {
	return t.Format("03:04 PM")
}
