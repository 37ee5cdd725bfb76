package store

import (
	"context"
	"fmt"
)

// queryStrings runs a single-column query and collects the values.
func queryStrings(ctx context.Context, db *DB, query string, args []any) ([]string, error) {
	result := make([]string, 0, 16)

	err := db.withRetry(ctx, func() error {
		result = result[:0]

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var s string
			if err := rows.Scan(&s); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			result = append(result, s)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// execAffectingOne executes a DML statement and returns notFound when no row
// was affected.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
