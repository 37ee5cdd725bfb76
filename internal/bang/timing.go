// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bang

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-bangs/models"
)

// DefaultReminderTime is the local time of day used when a user has none.
const DefaultReminderTime = "09:00"

var calendarDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006/01/02",
}

// ParseReminderTiming computes the next due instant for frequency, counted
// from now, at timeOfDay ("HH:MM") in timezone:
//
//   - daily: tomorrow;
//   - weekly: the next Saturday, never today;
//   - monthly: the 1st of next month.
//
// An unknown timezone means UTC and an unparsable timeOfDay means 09:00.
// The result is in UTC. IsValid is false for an unknown frequency.
func ParseReminderTiming(frequency, timeOfDay, timezone string, now time.Time) models.ReminderTiming {
	freq, ok := models.ParseFrequency(frequency)
	if !ok {
		return models.ReminderTiming{IsValid: false}
	}

	loc := LoadLocation(timezone)
	hour, minute := parseTimeOfDay(timeOfDay)

	local := now.In(loc)
	y, m, d := local.Date()

	var next time.Time
	switch freq {
	case models.FrequencyDaily:
		next = time.Date(y, m, d+1, hour, minute, 0, 0, loc)
	case models.FrequencyWeekly:
		days := (int(time.Saturday) - int(local.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		next = time.Date(y, m, d+days, hour, minute, 0, 0, loc)
	case models.FrequencyMonthly:
		next = time.Date(y, m+1, 1, hour, minute, 0, 0, loc)
	}

	return models.ReminderTiming{
		IsValid:   true,
		Type:      models.ReminderRecurring,
		Frequency: freq,
		NextDue:   next.UTC(),
	}
}

// ParseCalendarDate reads an explicit date such as "2026-12-24" or
// "2026-12-24 18:30" in timezone. Dates without a time get timeOfDay.
func ParseCalendarDate(s, timeOfDay, timezone string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	loc := LoadLocation(timezone)

	for _, layout := range calendarDateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "15") {
			hour, minute := parseTimeOfDay(timeOfDay)
			t = time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, loc)
		}
		return t.UTC(), true
	}

	return time.Time{}, false
}

// LoadLocation returns the IANA location named tz, or UTC when tz is empty
// or unknown.
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseTimeOfDay(s string) (int, int) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 9, 0
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 9, 0
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 9, 0
	}
	return hour, minute
}
