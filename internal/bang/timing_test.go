package bang

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminderTiming_WeeklyChicago(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// a few starting points across the week, including a Saturday
	starts := []time.Time{
		time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC), // Monday
		time.Date(2026, 10, 24, 3, 0, 0, 0, time.UTC),  // Friday evening in Chicago
		time.Date(2026, 10, 24, 20, 0, 0, 0, time.UTC), // Saturday in Chicago
		time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC), // Saturday before DST ends
	}

	for _, now := range starts {
		timing := ParseReminderTiming("weekly", "09:00", "America/Chicago", now)
		require.True(t, timing.IsValid)
		assert.Equal(t, models.ReminderRecurring, timing.Type)
		assert.Equal(t, models.FrequencyWeekly, timing.Frequency)
		assert.Equal(t, time.UTC, timing.NextDue.Location())

		local := timing.NextDue.In(chicago)
		assert.Equal(t, time.Saturday, local.Weekday(), now.String())
		assert.Equal(t, 9, local.Hour())
		assert.Equal(t, 0, local.Minute())
		assert.True(t, timing.NextDue.After(now))
		assert.True(t, timing.NextDue.Sub(now) <= 8*24*time.Hour)
	}
}

func TestParseReminderTiming(t *testing.T) {
	now := time.Date(2026, 1, 31, 22, 30, 0, 0, time.UTC) // Saturday

	tests := []struct {
		name      string
		frequency string
		timeOfDay string
		timezone  string
		want      time.Time
		valid     bool
	}{
		{
			name:      "daily is tomorrow",
			frequency: "daily",
			timeOfDay: "07:15",
			timezone:  "UTC",
			want:      time.Date(2026, 2, 1, 7, 15, 0, 0, time.UTC),
			valid:     true,
		},
		{
			name:      "weekly on a saturday skips to next week",
			frequency: "weekly",
			timeOfDay: "09:00",
			timezone:  "",
			want:      time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC),
			valid:     true,
		},
		{
			name:      "monthly is the first of next month",
			frequency: "MONTHLY",
			timeOfDay: "18:00",
			timezone:  "UTC",
			want:      time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC),
			valid:     true,
		},
		{
			name:      "local date decides tomorrow",
			frequency: "daily",
			timeOfDay: "09:00",
			timezone:  "Asia/Tokyo", // already Feb 1st there
			want:      time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			valid:     true,
		},
		{
			name:      "defaults for broken time and zone",
			frequency: "daily",
			timeOfDay: "25:99",
			timezone:  "Mars/Olympus",
			want:      time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			valid:     true,
		},
		{
			name:      "unknown frequency",
			frequency: "hourly",
			valid:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timing := ParseReminderTiming(tt.frequency, tt.timeOfDay, tt.timezone, now)
			assert.Equal(t, tt.valid, timing.IsValid)
			if tt.valid {
				assert.True(t, tt.want.Equal(timing.NextDue), "got %s", timing.NextDue)
			}
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	due, ok := ParseCalendarDate("2026-12-24", "08:30", "Europe/Berlin")
	require.True(t, ok)
	assert.True(t, time.Date(2026, 12, 24, 7, 30, 0, 0, time.UTC).Equal(due))

	due, ok = ParseCalendarDate("2026-12-24 18:00", "08:30", "UTC")
	require.True(t, ok)
	assert.True(t, time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC).Equal(due))

	_, ok = ParseCalendarDate("https://example.com", "08:30", "UTC")
	assert.False(t, ok)
}
