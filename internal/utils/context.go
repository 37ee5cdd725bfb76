// Package utils holds small helpers shared across the service: request
// context keys, JWT handling, JSON responses, the outbound HTTP client and
// ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-bangs/models"
)

// contextKey is a private type for context keys. A dedicated type keeps keys
// from colliding with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey stores the signed-in *models.User of a request.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext returns the signed-in user, or nil and false for an
// anonymous request.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
