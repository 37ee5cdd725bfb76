package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTriggerAlreadyExists is returned when an insert or rename would give
	// an owner two bangs or tab groups with the same trigger.
	ErrTriggerAlreadyExists = errors.New("trigger already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBangNotFound is returned when no custom bang of the owner has the
	// requested trigger.
	ErrBangNotFound = errors.New("bang was not found")

	// ErrTabGroupNotFound is returned when no tab group of the owner has the
	// requested trigger.
	ErrTabGroupNotFound = errors.New("tab group was not found")

	// ErrReminderNotFound is returned when an update or delete targets a
	// reminder that does not exist.
	ErrReminderNotFound = errors.New("reminder was not found")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrUnknownDriver is returned by [NewConnect] for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
