// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

const bangsTable = "bangs"

var bangColumns = []string{
	"id", "user_id", "trigger", "name", "kind", "url_template",
	"hidden", "usage_count", "last_used_at", "created_at",
}

// bangRepository is the SQL implementation of [BangRepository] over the
// "bangs" table. Triggers are unique per owner.
type bangRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBangRepository constructs a [BangRepository] backed by db.
func NewBangRepository(db *DB, logger *logger.Logger) BangRepository {
	logger.Debug().Msg("creating bang repository")
	return &bangRepository{
		db:     db,
		logger: logger,
	}
}

// FindBang returns the owner's custom bang with the given trigger,
// or [ErrBangNotFound].
func (r *bangRepository) FindBang(ctx context.Context, userID int64, trigger string) (models.Bang, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(bangColumns...).
		From(bangsTable).
		Where("user_id = ?", userID).
		Where("trigger = ?", trigger).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Bang{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bang models.Bang
	err = r.db.withRetry(ctx, func() error {
		return scanBang(r.db.QueryRowContext(ctx, query, args...), &bang)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bang{}, ErrBangNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "bangRepository.FindBang").
			Int64("owner_id", userID).
			Str("trigger", trigger).
			Msg("failed to find bang")
		return models.Bang{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bang, nil
}

// ListBangTriggers returns every custom trigger of the owner.
func (r *bangRepository) ListBangTriggers(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := r.db.builder.
		Select("trigger").
		From(bangsTable).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	triggers, err := queryStrings(ctx, r.db, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bangRepository.ListBangTriggers").
			Int64("owner_id", userID).
			Msg("failed to list bang triggers")
		return nil, err
	}
	return triggers, nil
}

// CreateBang inserts a custom bang and returns it with ID and CreatedAt set.
// A duplicate trigger yields [ErrTriggerAlreadyExists].
func (r *bangRepository) CreateBang(ctx context.Context, bang models.Bang) (models.Bang, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(bangsTable).
		Columns("user_id", "trigger", "name", "kind", "url_template", "hidden").
		Values(bang.UserID, bang.Trigger, bang.Name, string(bang.Kind), bang.URLTemplate, bang.Hidden).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Bang{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&bang.ID, &bang.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Bang{}, ErrTriggerAlreadyExists
		}
		log.Err(err).
			Str("func", "bangRepository.CreateBang").
			Int64("owner_id", bang.UserID).
			Str("trigger", bang.Trigger).
			Msg("failed to insert bang")
		return models.Bang{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return bang, nil
}

// UpdateBang applies the non-nil fields of update to the owner's bang.
func (r *bangRepository) UpdateBang(ctx context.Context, update models.BangUpdate) error {
	if update.IsEmpty() {
		return ErrNothingToUpdate
	}

	builder := r.db.builder.Update(bangsTable)
	if update.NewTrigger != nil {
		builder = builder.Set("trigger", *update.NewTrigger)
	}
	if update.NewURL != nil {
		builder = builder.Set("url_template", *update.NewURL)
	}
	if update.NewName != nil {
		builder = builder.Set("name", *update.NewName)
	}

	query, args, err := builder.
		Where("user_id = ?", update.UserID).
		Where("trigger = ?", update.Trigger).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = execAffectingOne(ctx, r.db, query, args, ErrBangNotFound)
	if err != nil && !errors.Is(err, ErrBangNotFound) {
		if isUniqueViolation(err) {
			return ErrTriggerAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "bangRepository.UpdateBang").
			Int64("owner_id", update.UserID).
			Str("trigger", update.Trigger).
			Msg("failed to update bang")
	}
	return err
}

// UpdateBangName replaces the display name of the owner's bang.
func (r *bangRepository) UpdateBangName(ctx context.Context, userID int64, trigger, name string) error {
	return r.UpdateBang(ctx, models.BangUpdate{UserID: userID, Trigger: trigger, NewName: &name})
}

// DeleteBang removes the owner's bang, or returns [ErrBangNotFound].
func (r *bangRepository) DeleteBang(ctx context.Context, userID int64, trigger string) error {
	query, args, err := r.db.builder.
		Delete(bangsTable).
		Where("user_id = ?", userID).
		Where("trigger = ?", trigger).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = execAffectingOne(ctx, r.db, query, args, ErrBangNotFound)
	if err != nil && !errors.Is(err, ErrBangNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "bangRepository.DeleteBang").
			Int64("owner_id", userID).
			Str("trigger", trigger).
			Msg("failed to delete bang")
	}
	return err
}

// TouchBangUsage increments the usage counter and stamps last_used_at.
func (r *bangRepository) TouchBangUsage(ctx context.Context, bangID int64, usedAt time.Time) error {
	query, args, err := r.db.builder.
		Update(bangsTable).
		Set("usage_count", sq.Expr("usage_count + 1")).
		Set("last_used_at", usedAt.UTC()).
		Where("id = ?", bangID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrBangNotFound)
}

func scanBang(row *sql.Row, bang *models.Bang) error {
	var (
		kind       string
		lastUsedAt sql.NullTime
	)
	err := row.Scan(
		&bang.ID,
		&bang.UserID,
		&bang.Trigger,
		&bang.Name,
		&kind,
		&bang.URLTemplate,
		&bang.Hidden,
		&bang.UsageCount,
		&lastUsedAt,
		&bang.CreatedAt,
	)
	if err != nil {
		return err
	}

	bang.Kind = models.BangKind(kind)
	if lastUsedAt.Valid {
		t := lastUsedAt.Time
		bang.LastUsedAt = &t
	}
	return nil
}
