package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgoBuckets(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{name: "seconds ago", elapsed: 30 * time.Second, want: "just now"},
		{name: "just under a minute", elapsed: 59 * time.Second, want: "just now"},
		{name: "one minute", elapsed: time.Minute, want: "1m ago"},
		{name: "fifty-nine minutes", elapsed: 59 * time.Minute, want: "59m ago"},
		{name: "one hour", elapsed: time.Hour, want: "1h ago"},
		{name: "twenty-three hours", elapsed: 23 * time.Hour, want: "23h ago"},
		{name: "one day", elapsed: 24 * time.Hour, want: "1d ago"},
		{name: "six days", elapsed: 6 * 24 * time.Hour, want: "6d ago"},
		{name: "one week falls back to date", elapsed: 7 * 24 * time.Hour, want: "8/21/2026"},
		{name: "months ago", elapsed: 90 * 24 * time.Hour, want: "5/30/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeAgoAt(now.Add(-tt.elapsed), now))
		})
	}
}

func TestFormatters(t *testing.T) {
	moment := time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "Saturday, June 14, 2025 at 6:30 PM", FormatDateTime(moment))
	assert.Equal(t, "6/14/2025", FormatDate(moment))
	assert.Equal(t, "06:30 PM", FormatTime(moment))
}
