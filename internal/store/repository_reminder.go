// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

const remindersTable = "reminders"

// reminderRepository is the SQL implementation of [ReminderRepository].
// Due instants are stored in UTC.
type reminderRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReminderRepository constructs a [ReminderRepository] backed by db.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReminder inserts a reminder and returns it with ID and CreatedAt set.
func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	var frequency sql.NullString
	if reminder.Frequency != "" {
		frequency = sql.NullString{String: string(reminder.Frequency), Valid: true}
	}

	query, args, err := r.db.builder.
		Insert(remindersTable).
		Columns("user_id", "title", "content", "type", "frequency", "due_at", "processed").
		Values(reminder.UserID, reminder.Title, reminder.Content, string(reminder.Type), frequency, reminder.DueAt.UTC(), false).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&reminder.ID, &reminder.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reminderRepository.CreateReminder").
			Int64("owner_id", reminder.UserID).
			Msg("failed to insert reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reminder, nil
}

// UpdateReminderTitle replaces the reminder title.
func (r *reminderRepository) UpdateReminderTitle(ctx context.Context, reminderID int64, title string) error {
	query, args, err := r.db.builder.
		Update(remindersTable).
		Set("title", title).
		Where("id = ?", reminderID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrReminderNotFound)
}

// FindDueReminders returns up to limit unprocessed reminders due at or before
// dueBefore, earliest first.
func (r *reminderRepository) FindDueReminders(ctx context.Context, dueBefore time.Time, limit uint64) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "title", "content", "type", "frequency", "due_at", "processed", "created_at").
		From(remindersTable).
		Where("processed = ?", false).
		Where("due_at <= ?", dueBefore.UTC()).
		OrderBy("due_at ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.FindDueReminders").
			Msg("failed to query due reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0, limit)
	for rows.Next() {
		var (
			rem       models.Reminder
			kind      string
			frequency sql.NullString
		)
		err := rows.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Content, &kind, &frequency, &rem.DueAt, &rem.Processed, &rem.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rem.Type = models.ReminderType(kind)
		rem.Frequency = models.Frequency(frequency.String)
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

// RescheduleReminder moves a recurring reminder to its next occurrence.
func (r *reminderRepository) RescheduleReminder(ctx context.Context, reminderID int64, dueAt time.Time) error {
	query, args, err := r.db.builder.
		Update(remindersTable).
		Set("due_at", dueAt.UTC()).
		Set("processed", false).
		Where("id = ?", reminderID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrReminderNotFound)
}

// DeleteReminder removes a fired one-time reminder.
func (r *reminderRepository) DeleteReminder(ctx context.Context, reminderID int64) error {
	query, args, err := r.db.builder.
		Delete(remindersTable).
		Where("id = ?", reminderID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrReminderNotFound)
}
