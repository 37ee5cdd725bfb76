package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

const notesTable = "notes"

type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := r.db.builder.
		Insert(notesTable).
		Columns("user_id", "title", "content", "hidden", "pinned").
		Values(note.UserID, note.Title, note.Content, note.Hidden, note.Pinned).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("owner_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}
