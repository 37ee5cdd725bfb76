package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bangs/internal/app"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusUnauthorized,
	service.ErrTabGroupNotFound:        http.StatusNotFound,
	service.ErrDatabaseUnavailable:     http.StatusServiceUnavailable,
	service.ErrNoSession:               http.StatusInternalServerError,

	session.ErrStoreUnavailable: http.StatusServiceUnavailable,
	session.ErrEncodingSession:  http.StatusInternalServerError,
	session.ErrDecodingSession:  http.StatusInternalServerError,

	store.ErrBangNotFound:     http.StatusNotFound,
	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrNoSessionInContext: http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageForStatus returns the text shown on the error page for status.
func messageForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return app.MsgPageNotFound
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return app.MsgServiceUnavailable
	case http.StatusUnauthorized:
		return http.StatusText(status)
	default:
		return app.MsgInternalServerError
	}
}
