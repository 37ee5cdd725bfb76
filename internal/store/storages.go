package store

import "github.com/MKhiriev/go-bangs/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	BangRepository     BangRepository
	TabGroupRepository TabGroupRepository
	BookmarkRepository BookmarkRepository
	NoteRepository     NoteRepository
	ReminderRepository ReminderRepository
	UserRepository     UserRepository
	Pinger             Pinger
}

// NewStorages builds every repository over one connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BangRepository:     NewBangRepository(db, log),
		TabGroupRepository: NewTabGroupRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		ReminderRepository: NewReminderRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
		Pinger:             db,
	}
}
