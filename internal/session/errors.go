package session

import "errors"

var (
	// ErrSessionNotFound is returned by [Store.Load] for unknown or expired ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEncodingSession is returned when a session cannot be serialized.
	ErrEncodingSession = errors.New("failed to encode session")

	// ErrDecodingSession is returned when stored session data is corrupt.
	ErrDecodingSession = errors.New("failed to decode session")

	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
