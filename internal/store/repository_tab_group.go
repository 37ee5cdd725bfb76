package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

const (
	tabGroupsTable = "tab_groups"
	tabItemsTable  = "tab_items"
)

type tabGroupRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTabGroupRepository constructs a [TabGroupRepository] backed by db.
func NewTabGroupRepository(db *DB, logger *logger.Logger) TabGroupRepository {
	logger.Debug().Msg("creating tab group repository")
	return &tabGroupRepository{
		db:     db,
		logger: logger,
	}
}

// FindTabGroup loads the owner's tab group and its items ordered by position.
func (r *tabGroupRepository) FindTabGroup(ctx context.Context, userID int64, trigger string) (models.TabGroup, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "trigger", "title", "created_at").
		From(tabGroupsTable).
		Where("user_id = ?", userID).
		Where("trigger = ?", trigger).
		Limit(1).
		ToSql()
	if err != nil {
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var group models.TabGroup
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&group.ID, &group.UserID, &group.Trigger, &group.Title, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TabGroup{}, ErrTabGroupNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "tabGroupRepository.FindTabGroup").
			Int64("owner_id", userID).
			Str("trigger", trigger).
			Msg("failed to find tab group")
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	items, err := r.findItems(ctx, group.ID)
	if err != nil {
		log.Err(err).
			Str("func", "tabGroupRepository.FindTabGroup").
			Int64("group_id", group.ID).
			Msg("failed to load tab items")
		return models.TabGroup{}, err
	}
	group.Items = items

	return group, nil
}

func (r *tabGroupRepository) findItems(ctx context.Context, groupID int64) ([]models.TabItem, error) {
	query, args, err := r.db.builder.
		Select("id", "group_id", "title", "url", "position").
		From(tabItemsTable).
		Where("group_id = ?", groupID).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.TabItem, 0, 8)
	for rows.Next() {
		var item models.TabItem
		if err := rows.Scan(&item.ID, &item.GroupID, &item.Title, &item.URL, &item.Position); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// ListTabTriggers returns every tab group trigger of the owner.
func (r *tabGroupRepository) ListTabTriggers(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := r.db.builder.
		Select("trigger").
		From(tabGroupsTable).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	triggers, err := queryStrings(ctx, r.db, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tabGroupRepository.ListTabTriggers").
			Int64("owner_id", userID).
			Msg("failed to list tab triggers")
		return nil, err
	}
	return triggers, nil
}

// CreateTabGroup inserts the group and its items in one transaction.
// Item positions follow slice order.
func (r *tabGroupRepository) CreateTabGroup(ctx context.Context, group models.TabGroup) (models.TabGroup, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "tabGroupRepository.CreateTabGroup").
			Int64("owner_id", group.UserID).
			Msg("failed to begin transaction")
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder.
		Insert(tabGroupsTable).
		Columns("user_id", "trigger", "title").
		Values(group.UserID, group.Trigger, group.Title).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.TabGroup{}, ErrTriggerAlreadyExists
		}
		log.Err(err).
			Str("func", "tabGroupRepository.CreateTabGroup").
			Int64("owner_id", group.UserID).
			Str("trigger", group.Trigger).
			Msg("failed to insert tab group")
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(group.Items) > 0 {
		insert := r.db.builder.
			Insert(tabItemsTable).
			Columns("group_id", "title", "url", "position")
		for i := range group.Items {
			group.Items[i].GroupID = group.ID
			group.Items[i].Position = i
			insert = insert.Values(group.ID, group.Items[i].Title, group.Items[i].URL, i)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return models.TabGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "tabGroupRepository.CreateTabGroup").
				Int64("group_id", group.ID).
				Int("items", len(group.Items)).
				Msg("failed to insert tab items")
			return models.TabGroup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return group, nil
}

// RenameTabGroupTrigger changes the trigger of the owner's tab group.
func (r *tabGroupRepository) RenameTabGroupTrigger(ctx context.Context, userID int64, trigger, newTrigger string) error {
	query, args, err := r.db.builder.
		Update(tabGroupsTable).
		Set("trigger", newTrigger).
		Where("user_id = ?", userID).
		Where("trigger = ?", trigger).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = execAffectingOne(ctx, r.db, query, args, ErrTabGroupNotFound)
	if err != nil && !errors.Is(err, ErrTabGroupNotFound) {
		if isUniqueViolation(err) {
			return ErrTriggerAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "tabGroupRepository.RenameTabGroupTrigger").
			Int64("owner_id", userID).
			Str("trigger", trigger).
			Msg("failed to rename tab group")
	}
	return err
}

// DeleteTabGroup removes the owner's tab group. Items go with it through
// the foreign key cascade.
func (r *tabGroupRepository) DeleteTabGroup(ctx context.Context, userID int64, trigger string) error {
	query, args, err := r.db.builder.
		Delete(tabGroupsTable).
		Where("user_id = ?", userID).
		Where("trigger = ?", trigger).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = execAffectingOne(ctx, r.db, query, args, ErrTabGroupNotFound)
	if err != nil && !errors.Is(err, ErrTabGroupNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "tabGroupRepository.DeleteTabGroup").
			Int64("owner_id", userID).
			Str("trigger", trigger).
			Msg("failed to delete tab group")
	}
	return err
}
