package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/utils"
	"github.com/MKhiriev/go-bangs/models"
	"github.com/go-chi/chi/v5"
)

// launchTabs renders the page that opens every URL of the owner's tab group
// and then navigates back. Anonymous visitors are sent to the home page.
func (h *Handler) launchTabs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", models.CacheNoStore)

	ctx := r.Context()
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusFound)
		return
	}

	group, err := h.services.TabService.LaunchGroup(ctx, user, chi.URLParam(r, "trigger"))
	if errors.Is(err, service.ErrTabGroupNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.pages.render(w, r, http.StatusOK, pageTabs, group)
}
