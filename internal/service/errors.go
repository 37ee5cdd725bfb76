package service

import (
	"errors"
	"fmt"
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUserNotFound            = errors.New("user not found")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTabGroupNotFound        = errors.New("tab group not found")
	ErrDatabaseUnavailable     = errors.New("database is unavailable")
	ErrNoSession               = errors.New("no session in request context")
)

// ValidationError is a rejected command. Message is shown to the user as is
// (after HTML escaping) with status 422.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
