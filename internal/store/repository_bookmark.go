package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

const bookmarksTable = "bookmarks"

type bookmarkRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by db.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// FindBookmarksByURL returns the owner's bookmarks pointing at url.
// Callers compare titles to detect duplicates.
func (r *bookmarkRepository) FindBookmarksByURL(ctx context.Context, userID int64, url string) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "url", "title", "hidden", "pinned", "created_at").
		From(bookmarksTable).
		Where("user_id = ?", userID).
		Where("url = ?", url).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.FindBookmarksByURL").
			Int64("owner_id", userID).
			Msg("failed to query bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 2)
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.Hidden, &b.Pinned, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// CreateBookmark inserts a bookmark and returns it with ID and CreatedAt set.
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	query, args, err := r.db.builder.
		Insert(bookmarksTable).
		Columns("user_id", "url", "title", "hidden", "pinned").
		Values(bookmark.UserID, bookmark.URL, bookmark.Title, bookmark.Hidden, bookmark.Pinned).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&bookmark.ID, &bookmark.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bookmarkRepository.CreateBookmark").
			Int64("owner_id", bookmark.UserID).
			Msg("failed to insert bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return bookmark, nil
}
