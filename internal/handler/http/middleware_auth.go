package http

import (
	"net/http"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/utils"
	"github.com/rs/zerolog"
)

const tokenCookieName = "token"

// withOptionalUser resolves the token presented in the "Authorization"
// header or the token cookie to the signed-in user and stores it with
// [utils.WithUser]. A missing, malformed, expired or unknown token leaves
// the request anonymous; it is never rejected here.
func (h *Handler) withOptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("token rejected, continuing as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.UserID)
		})
		ctx = l.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest prefers the Authorization header over the cookie. A
// malformed header yields no token.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			return ""
		}
		return tokenString
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
