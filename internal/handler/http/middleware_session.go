package http

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/session"
)

const sessionCookieName = "bangs_session"

// withSession loads the visitor session named by the session cookie, or
// starts a new one, and stores it in the request context. A changed session
// is saved right before the response header goes out, so the next request
// of the same visitor already sees it.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		sess := h.loadSession(ctx, r)
		if sess.IsNew() {
			http.SetCookie(w, h.sessionCookie(sess.ID))
		}

		sw := &sessionResponseWriter{ResponseWriter: w}
		sw.beforeHeader = func() { h.saveSession(ctx, log, sess) }

		next.ServeHTTP(sw, r.WithContext(session.WithContext(ctx, sess)))

		sw.once.Do(sw.beforeHeader)
	})
}

func (h *Handler) loadSession(ctx context.Context, r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return session.New(h.ids.Generate())
	}

	sess, err := h.sessions.Load(ctx, cookie.Value)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "Handler.loadSession").Msg("starting a fresh session")
		}
		// unknown ids are never adopted
		return session.New(h.ids.Generate())
	}
	return sess
}

func (h *Handler) saveSession(ctx context.Context, log *logger.Logger, sess *session.Session) {
	if !sess.IsDirty() {
		return
	}
	if err := h.sessions.Save(context.WithoutCancel(ctx), sess); err != nil {
		log.Err(err).Str("func", "Handler.saveSession").Msg("session was not saved")
	}
}

func (h *Handler) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionResponseWriter runs beforeHeader once, before anything reaches the
// client.
type sessionResponseWriter struct {
	http.ResponseWriter
	beforeHeader func()
	once         sync.Once
}

func (w *sessionResponseWriter) WriteHeader(statusCode int) {
	w.once.Do(w.beforeHeader)
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionResponseWriter) Write(b []byte) (int, error) {
	w.once.Do(w.beforeHeader)
	return w.ResponseWriter.Write(b)
}

func (w *sessionResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
