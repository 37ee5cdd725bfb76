package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByID retrieves the user with the given ID.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(
			"user_id", "email", "name", "default_search_provider", "timezone",
			"reminder_frequency", "reminder_time", "hidden_items_password_hash", "created_at",
		).
		From(models.User{}.TableName()).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user      models.User
		frequency string
		hash      sql.NullString
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&user.UserID,
			&user.Email,
			&user.Name,
			&user.DefaultSearchProvider,
			&user.Timezone,
			&frequency,
			&user.ReminderPreferences.Time,
			&hash,
			&user.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Int64("user_id", userID).
			Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.ReminderPreferences.Frequency = models.Frequency(frequency)
	if hash.Valid {
		user.HiddenItemsPasswordHash = &hash.String
	}

	return user, nil
}
