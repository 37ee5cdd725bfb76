package models

import "time"

// User is the authenticated owner of bangs, tab groups, bookmarks, notes and
// reminders. A nil *User anywhere in the resolution path means an anonymous
// visitor.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the login identity issued by the magic-link flow.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// DefaultSearchProvider names the provider used for plain searches
	// (e.g. "duckduckgo", "google"). Empty means the service default.
	DefaultSearchProvider string `json:"default_search_provider"`

	// Timezone is an IANA zone name used for reminder scheduling.
	// Empty means UTC.
	Timezone string `json:"timezone"`

	// ReminderPreferences holds the default frequency and time of day for
	// reminders created without an explicit frequency.
	ReminderPreferences ReminderPreferences `json:"reminder_preferences"`

	// HiddenItemsPasswordHash is set once the user configures a global
	// password for hidden items. Nil means hiding is not available.
	HiddenItemsPasswordHash *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// ReminderPreferences are the per-user defaults for !remind.
type ReminderPreferences struct {
	// Frequency is the default repeat period. Empty means daily.
	Frequency Frequency `json:"frequency"`

	// Time is the local time of day in "HH:MM". Empty means 09:00.
	Time string `json:"time"`
}

// CanHideItems reports whether the user has configured a hidden-items password.
func (u *User) CanHideItems() bool {
	return u != nil && u.HiddenItemsPasswordHash != nil && *u.HiddenItemsPasswordHash != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
