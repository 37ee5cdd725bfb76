package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
)

// Notifier delivers a due reminder to its owner.
type Notifier interface {
	Notify(ctx context.Context, user models.User, reminder models.Reminder) error
}

// LogNotifier writes due reminders to the log. Mail delivery lives in a
// separate service that reads the same log stream.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(_ context.Context, user models.User, reminder models.Reminder) error {
	n.logger.Info().
		Int64("owner_id", user.UserID).
		Str("email", user.Email).
		Int64("reminder_id", reminder.ID).
		Str("title", reminder.Title).
		Str("type", string(reminder.Type)).
		Time("due_at", reminder.DueAt).
		Msg("reminder due")
	return nil
}

// ReminderWorker polls for due reminders on a ticker. One-time reminders are
// deleted after notification; recurring ones are moved to their next
// occurrence in the owner's timezone.
type ReminderWorker struct {
	reminders store.ReminderRepository
	users     store.UserRepository
	notifier  Notifier

	interval  time.Duration
	batchSize uint64
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewReminderWorker(
	reminders store.ReminderRepository,
	users store.UserRepository,
	notifier Notifier,
	cfg config.Workers,
	log *logger.Logger,
) *ReminderWorker {
	interval := cfg.ReminderInterval
	if interval <= 0 {
		interval = time.Minute
	}
	batch := cfg.ReminderBatchSize
	if batch <= 0 {
		batch = 100
	}

	return &ReminderWorker{
		reminders: reminders,
		users:     users,
		notifier:  notifier,
		interval:  interval,
		batchSize: uint64(batch),
		now:       time.Now,
		logger:    log.ForTask("reminders"),
	}
}

// Run starts the polling goroutine. A running worker is restarted.
func (w *ReminderWorker) Run() {
	_ = w.Stop(context.Background())

	w.mu.Lock()
	ctx, cancel := context.WithCancel(w.logger.WithContext(context.Background()))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if _, err := w.ProcessDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
					w.logger.Err(err).Msg("processing due reminders failed")
				}
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it. Safe to call when the
// worker is not running.
func (w *ReminderWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ProcessDue handles one batch of due reminders and returns how many were
// notified. A failure on one reminder is logged and does not stop the batch.
func (w *ReminderWorker) ProcessDue(ctx context.Context) (int, error) {
	now := w.now()

	due, err := w.reminders.FindDueReminders(ctx, now, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("error finding due reminders: %w", err)
	}

	users := make(map[int64]models.User)
	processed := 0

	for _, reminder := range due {
		log := w.logger.With().Int64("reminder_id", reminder.ID).Int64("owner_id", reminder.UserID).Logger()

		user, ok := users[reminder.UserID]
		if !ok {
			user, err = w.users.FindUserByID(ctx, reminder.UserID)
			if err != nil {
				log.Err(err).Msg("owner lookup failed")
				continue
			}
			users[reminder.UserID] = user
		}

		if err = w.notifier.Notify(ctx, user, reminder); err != nil {
			log.Err(err).Msg("notification failed")
			continue
		}
		processed++

		if err = w.advance(ctx, user, reminder, now); err != nil {
			log.Err(err).Msg("reminder was notified but not advanced")
		}
	}

	return processed, nil
}

func (w *ReminderWorker) advance(ctx context.Context, user models.User, reminder models.Reminder, now time.Time) error {
	if reminder.Type != models.ReminderRecurring {
		return w.reminders.DeleteReminder(ctx, reminder.ID)
	}

	frequency := reminder.Frequency
	if frequency == "" {
		frequency = user.ReminderPreferences.Frequency
	}
	if frequency == "" {
		frequency = models.FrequencyDaily
	}

	timeOfDay := user.ReminderPreferences.Time
	if timeOfDay == "" {
		timeOfDay = bang.DefaultReminderTime
	}

	timing := bang.ParseReminderTiming(string(frequency), timeOfDay, user.Timezone, now)
	if !timing.IsValid {
		timing = bang.ParseReminderTiming(string(models.FrequencyDaily), timeOfDay, user.Timezone, now)
	}

	return w.reminders.RescheduleReminder(ctx, reminder.ID, timing.NextDue)
}
