package bang

import "errors"

var (
	// ErrReadingCatalog is returned when the catalog override file cannot be read.
	ErrReadingCatalog = errors.New("error reading bang catalog")

	// ErrInvalidCatalog is returned when catalog YAML cannot be decoded or
	// contains an entry without a trigger or destination.
	ErrInvalidCatalog = errors.New("invalid bang catalog")

	// ErrReservedTrigger is returned when a catalog entry uses the name of a
	// system command.
	ErrReservedTrigger = errors.New("trigger is reserved for a system command")
)
