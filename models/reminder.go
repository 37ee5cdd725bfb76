// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ReminderType distinguishes one-shot reminders from repeating ones.
type ReminderType string

const (
	ReminderOnce      ReminderType = "once"
	ReminderRecurring ReminderType = "recurring"
)

// Frequency is the repeat period of a recurring reminder.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency returns the Frequency named by s (case-insensitive).
// The second result is false when s is not a known frequency keyword.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyDaily:
		return FrequencyDaily, true
	case FrequencyWeekly:
		return FrequencyWeekly, true
	case FrequencyMonthly:
		return FrequencyMonthly, true
	}
	return "", false
}

// Reminder is a note that becomes due at DueAt.
//
// Recurring reminders are rescheduled after firing and never deleted.
// One-time reminders are deleted after firing.
type Reminder struct {
	ID      int64        `json:"id"`
	UserID  int64        `json:"user_id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Type    ReminderType `json:"type"`

	// Frequency is empty for one-time reminders.
	Frequency Frequency `json:"frequency,omitempty"`

	// DueAt is always stored in UTC.
	DueAt     time.Time `json:"due_at"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderTiming is the result of computing the next due instant for a frequency.
type ReminderTiming struct {
	IsValid   bool
	Type      ReminderType
	Frequency Frequency
	NextDue   time.Time
}
