package adapter

import "errors"

var (
	ErrRequestFailed    = errors.New("request failed")
	ErrNotFound         = errors.New("page not found")
	ErrForbidden        = errors.New("access to page forbidden")
	ErrUpstream         = errors.New("upstream server error")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotHTML          = errors.New("response is not html")
	ErrNoTitle          = errors.New("page has no title")
)
