package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_NewVisitorGetsCookie(t *testing.T) {
	env := newTestEnv(t)

	rr := env.get("/search?q=x")

	cookie := sessionCookieFrom(rr)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)

	id, err := uuid.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	assert.Equal(t, cookie.Value, env.resolver.lastSess.ID)
	assert.True(t, env.resolver.lastNew)
	_, err = env.sessions.Load(context.Background(), cookie.Value)
	assert.NoError(t, err, "a new session is stored")
}

func TestSession_StateSurvivesRequests(t *testing.T) {
	env := newTestEnv(t)
	env.resolver.hook = func(sess *session.Session) {
		sess.RateLimit.SearchCount++
		sess.MarkDirty()
	}

	first := env.get("/search?q=one")
	cookie := sessionCookieFrom(first)
	require.NotNil(t, cookie)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/search?q=again", nil)
		req.AddCookie(cookie)
		rr := env.do(req)
		assert.Nil(t, sessionCookieFrom(rr), "known sessions are not re-issued")
		assert.False(t, env.resolver.lastNew)
	}

	stored, err := env.sessions.Load(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.RateLimit.SearchCount)
}

func TestSession_SavedBeforeResponseIsWritten(t *testing.T) {
	env := newTestEnv(t)
	var seenBeforeWrite bool

	h := &Handler{sessions: env.sessions, ids: utils.NewUUIDGenerator(), logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		require.True(t, ok)
		sess.RateLimit.SearchCount = 42
		sess.MarkDirty()

		w.WriteHeader(http.StatusFound)

		stored, err := env.sessions.Load(context.Background(), sess.ID)
		seenBeforeWrite = err == nil && stored.RateLimit.SearchCount == 42
	})

	h.withSession(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, seenBeforeWrite)
}

func TestSession_UnknownIDIsNotAdopted(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/search?q=x", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "attacker-chosen"})
	rr := env.do(req)

	cookie := sessionCookieFrom(rr)
	require.NotNil(t, cookie)
	assert.NotEqual(t, "attacker-chosen", cookie.Value)
	assert.Equal(t, cookie.Value, env.resolver.lastSess.ID)
}

func TestSession_ExpiredSessionStartsOver(t *testing.T) {
	env := newTestEnv(t)
	first := env.get("/search?q=one")
	cookie := sessionCookieFrom(first)
	require.NotNil(t, cookie)

	require.NoError(t, env.sessions.Delete(context.Background(), cookie.Value))

	req := httptest.NewRequest(http.MethodGet, "/search?q=two", nil)
	req.AddCookie(cookie)
	rr := env.do(req)

	renewed := sessionCookieFrom(rr)
	require.NotNil(t, renewed)
	assert.NotEqual(t, cookie.Value, renewed.Value)
	assert.True(t, env.resolver.lastNew)
}
