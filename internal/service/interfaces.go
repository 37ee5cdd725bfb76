package service

import (
	"context"

	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/models"
)

// Resolver turns a raw search box query into exactly one response.
// A nil user is an anonymous visitor.
type Resolver interface {
	Resolve(ctx context.Context, sess *session.Session, user *models.User, rawQuery string) (models.Resolution, error)
}

// CommandHandler executes the reserved system commands for a signed-in user.
type CommandHandler interface {
	Handle(ctx context.Context, sess *session.Session, user *models.User, query models.ParsedQuery) (models.Resolution, error)
}

// TabService loads tab groups for the launch page.
type TabService interface {
	LaunchGroup(ctx context.Context, user *models.User, trigger string) (models.TabGroup, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// TaskRunner runs fire-and-forget work after the response has been sent.
// Go reports false when the task was dropped.
type TaskRunner interface {
	Go(name string, task func(ctx context.Context) error) bool
}
