package models

import "time"

// DefaultNoteTitle is used when a note or reminder is created without a title.
const DefaultNoteTitle = "Untitled"

// Note is a free-form text entry created by the !note command.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Hidden    bool      `json:"hidden"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}
