package validators

import "errors"

var (
	ErrEmptyURL          = errors.New("URL is required")
	ErrInvalidURLFormat  = errors.New("invalid URL format")
	ErrUnsupportedScheme = errors.New("URL must use http:// or https:// scheme")
	ErrMissingHost       = errors.New("URL must have a valid host")
)
