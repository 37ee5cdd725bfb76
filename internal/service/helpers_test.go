package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/mock"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
	"go.uber.org/mock/gomock"
)

// syncRunner records submitted tasks. drain runs them inline.
type syncRunner struct {
	mu    sync.Mutex
	names []string
	tasks []func(ctx context.Context) error
}

func (r *syncRunner) Go(name string, task func(ctx context.Context) error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.tasks = append(r.tasks, task)
	return true
}

// drain runs every queued task and returns their errors.
func (r *syncRunner) drain() []error {
	r.mu.Lock()
	tasks := r.tasks
	r.tasks = nil
	r.mu.Unlock()

	errs := make([]error, 0, len(tasks))
	for _, task := range tasks {
		errs = append(errs, task(context.Background()))
	}
	return errs
}

type testDeps struct {
	bangs     *mock.MockBangRepository
	tabs      *mock.MockTabGroupRepository
	bookmarks *mock.MockBookmarkRepository
	notes     *mock.MockNoteRepository
	reminders *mock.MockReminderRepository
	users     *mock.MockUserRepository
	titles    *mock.MockTitleFetcher
	runner    *syncRunner
	cache     *TriggerCache
	now       time.Time
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		bangs:     mock.NewMockBangRepository(ctrl),
		tabs:      mock.NewMockTabGroupRepository(ctrl),
		bookmarks: mock.NewMockBookmarkRepository(ctrl),
		notes:     mock.NewMockNoteRepository(ctrl),
		reminders: mock.NewMockReminderRepository(ctrl),
		users:     mock.NewMockUserRepository(ctrl),
		titles:    mock.NewMockTitleFetcher(ctrl),
		runner:    &syncRunner{},
		// Wednesday
		now: time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC),
	}
	d.cache = NewTriggerCache(d.bangs, d.tabs, time.Hour, logger.Nop())
	d.cache.now = func() time.Time { return d.now }

	return d
}

func (d *testDeps) storages() *store.Storages {
	return &store.Storages{
		BangRepository:     d.bangs,
		TabGroupRepository: d.tabs,
		BookmarkRepository: d.bookmarks,
		NoteRepository:     d.notes,
		ReminderRepository: d.reminders,
		UserRepository:     d.users,
	}
}

func (d *testDeps) commands() *commandHandler {
	h := NewCommandHandler(d.storages(), d.cache, d.titles, d.runner, logger.Nop()).(*commandHandler)
	h.now = func() time.Time { return d.now }
	return h
}

func testCatalog() *bang.Catalog {
	return bang.NewCatalog(
		models.Bang{
			Trigger:     "!g",
			Name:        "Google",
			Kind:        models.BangKindSearch,
			Domain:      "www.google.com",
			URLTemplate: "https://www.google.com/search?q={{{s}}}",
		},
		models.Bang{
			Trigger:     "!gh",
			Name:        "GitHub",
			Kind:        models.BangKindSearch,
			Domain:      "github.com",
			URLTemplate: "https://github.com/search?q={query}",
		},
	)
}

func (d *testDeps) resolver() *resolver {
	limiter := NewAnonymousRateLimiter(config.RateLimit{WarnAt: 10, LimitAt: 60, BaseDelay: 5 * time.Second}, nil)
	limiter.wait = func(context.Context, time.Duration) error { return nil }

	r := NewResolver(testCatalog(), d.bangs, d.cache, d.commands(), limiter, d.runner, "duckduckgo", nil, logger.Nop()).(*resolver)
	r.now = func() time.Time { return d.now }
	return r
}

// warmCache puts a fresh trigger cache entry into sess.
func (d *testDeps) warmCache(sess *session.Session, bangs, tabs []string) {
	sess.SetTriggerCache(&models.TriggerCacheEntry{
		BangTriggers: models.NewTriggerSet(bangs),
		TabTriggers:  models.NewTriggerSet(tabs),
		CachedAt:     d.now,
	})
}

func testUser() *models.User {
	return &models.User{UserID: 1, Email: "owner@example.com"}
}

func testUserWithHiddenPassword() *models.User {
	hash := "$argon2id$v=19$..."
	u := testUser()
	u.HiddenItemsPasswordHash = &hash
	return u
}
