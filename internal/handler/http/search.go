package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bangs/internal/app"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/utils"
	"github.com/MKhiriev/go-bangs/models"
)

const queryParam = "q"

// search resolves the raw "q" parameter to exactly one response. Without a
// query the search form is shown.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	rawQuery := r.URL.Query().Get(queryParam)
	if strings.TrimSpace(rawQuery) == "" {
		h.pages.render(w, r, http.StatusOK, pageHome, nil)
		return
	}

	ctx := r.Context()
	sess, ok := session.FromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionInContext)
		return
	}
	user, _ := utils.GetUserFromContext(ctx)

	res, err := h.services.Resolver.Resolve(ctx, sess, user, rawQuery)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeResolution(w, r, res)
}

func (h *Handler) writeResolution(w http.ResponseWriter, r *http.Request, res models.Resolution) {
	header := w.Header()
	if res.CacheControl != "" {
		header.Set("Cache-Control", res.CacheControl)
	}
	if res.Vary != "" {
		header.Set("Vary", res.Vary)
	}

	switch res.Kind {
	case models.ResolutionRedirect:
		// Location is set verbatim: relative bang paths must reach the
		// browser unchanged.
		header.Set("Location", res.Location)
		w.WriteHeader(http.StatusFound)
	case models.ResolutionAcknowledge:
		h.pages.render(w, r, http.StatusOK, pageAcknowledge, messagePage{Message: res.Message})
	case models.ResolutionInterstitial:
		h.pages.render(w, r, http.StatusOK, pageInterstitial, messagePage{Message: res.Message, Location: res.Location})
	default:
		logger.FromRequest(r).Error().Int("kind", int(res.Kind)).Msg("unknown resolution kind")
		h.pages.render(w, r, http.StatusInternalServerError, pageError,
			messagePage{Message: app.MsgInternalServerError})
	}
}

// writeError renders validation failures as a 422 page carrying their
// message. Anything else is logged and mapped through errorStatusMap.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Cache-Control", models.CacheNoStore)

	if v, ok := service.AsValidationError(err); ok {
		h.pages.render(w, r, http.StatusUnprocessableEntity, pageValidation, messagePage{Message: v.Message})
		return
	}

	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	h.pages.render(w, r, status, pageError, messagePage{Message: messageForStatus(status)})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", models.CacheNoStore)
	h.pages.render(w, r, http.StatusNotFound, pageNotFound, messagePage{Message: app.MsgPageNotFound})
}
