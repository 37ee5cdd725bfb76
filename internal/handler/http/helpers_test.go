package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/models"
)

const validToken = "valid-token"

// fakeResolver returns a fixed resolution and records what it was given.
type fakeResolver struct {
	mu sync.Mutex

	res  models.Resolution
	err  error
	hook func(sess *session.Session)

	calls    int
	lastRaw  string
	lastUser *models.User
	lastSess *session.Session
	// lastNew is sess.IsNew() as seen inside Resolve.
	lastNew bool
}

func (f *fakeResolver) Resolve(_ context.Context, sess *session.Session, user *models.User, raw string) (models.Resolution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.lastRaw, f.lastUser, f.lastSess = raw, user, sess
	f.lastNew = sess != nil && sess.IsNew()
	if f.hook != nil {
		f.hook(sess)
	}
	return f.res, f.err
}

type fakeTabService struct {
	groups map[string]models.TabGroup
	err    error
}

func (f *fakeTabService) LaunchGroup(_ context.Context, _ *models.User, trigger string) (models.TabGroup, error) {
	if f.err != nil {
		return models.TabGroup{}, f.err
	}
	group, ok := f.groups[trigger]
	if !ok {
		return models.TabGroup{}, service.ErrTabGroupNotFound
	}
	return group, nil
}

type fakeAuthService struct{}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != validToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 7}, nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := f.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return &models.User{UserID: token.UserID, Email: "seven@example.com"}, nil
}

type fakeAppInfo struct {
	healthErr error
}

func (f *fakeAppInfo) GetAppVersion(context.Context) string { return "1.2.3" }
func (f *fakeAppInfo) Health(context.Context) error        { return f.healthErr }

type testEnv struct {
	resolver *fakeResolver
	tabs     *fakeTabService
	appInfo  *fakeAppInfo
	sessions *session.MemoryStore
	metrics  *metrics.Recorder
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		resolver: &fakeResolver{res: models.Redirect("https://duckduckgo.com/?q=x", models.CacheNoStore, models.OutcomeSearch)},
		tabs:     &fakeTabService{groups: map[string]models.TabGroup{}},
		appInfo:  &fakeAppInfo{},
		sessions: session.NewMemoryStore(time.Hour),
		metrics:  metrics.NewRecorder(),
	}

	var cfg config.StructuredConfig
	cfg.Storage.Session.TTL = time.Hour

	h := NewHandler(&service.Services{
		AuthService:    &fakeAuthService{},
		AppInfoService: env.appInfo,
		Resolver:       env.resolver,
		TabService:     env.tabs,
	}, env.sessions, env.metrics, cfg, logger.Nop())
	env.router = h.Init()

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func sessionCookieFrom(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
