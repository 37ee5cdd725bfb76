package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bangs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BangRepository persists the custom bangs of users.
type BangRepository interface {
	FindBang(ctx context.Context, userID int64, trigger string) (models.Bang, error)
	ListBangTriggers(ctx context.Context, userID int64) ([]string, error)
	CreateBang(ctx context.Context, bang models.Bang) (models.Bang, error)
	UpdateBang(ctx context.Context, update models.BangUpdate) error
	UpdateBangName(ctx context.Context, userID int64, trigger, name string) error
	DeleteBang(ctx context.Context, userID int64, trigger string) error
	TouchBangUsage(ctx context.Context, bangID int64, usedAt time.Time) error
}

// TabGroupRepository persists tab groups and their ordered items.
type TabGroupRepository interface {
	FindTabGroup(ctx context.Context, userID int64, trigger string) (models.TabGroup, error)
	ListTabTriggers(ctx context.Context, userID int64) ([]string, error)
	CreateTabGroup(ctx context.Context, group models.TabGroup) (models.TabGroup, error)
	RenameTabGroupTrigger(ctx context.Context, userID int64, trigger, newTrigger string) error
	DeleteTabGroup(ctx context.Context, userID int64, trigger string) error
}

// BookmarkRepository persists bookmarks.
type BookmarkRepository interface {
	FindBookmarksByURL(ctx context.Context, userID int64, url string) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
}

// ReminderRepository persists reminders and serves the dispatch worker.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	UpdateReminderTitle(ctx context.Context, reminderID int64, title string) error
	FindDueReminders(ctx context.Context, dueBefore time.Time, limit uint64) ([]models.Reminder, error)
	RescheduleReminder(ctx context.Context, reminderID int64, dueAt time.Time) error
	DeleteReminder(ctx context.Context, reminderID int64) error
}

// UserRepository reads user accounts. Accounts are created by the sign-in flow.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
