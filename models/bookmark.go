package models

import (
	"strings"
	"time"
)

// Bookmark is a saved URL with an optional title.
type Bookmark struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Hidden    bool      `json:"hidden"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// SameTitle compares bookmark titles case-insensitively.
// Two bookmarks of one owner with the same URL and the same title are duplicates.
func (b Bookmark) SameTitle(title string) bool {
	return strings.EqualFold(strings.TrimSpace(b.Title), strings.TrimSpace(title))
}
