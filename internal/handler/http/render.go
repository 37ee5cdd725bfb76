package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bangs/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome         = "home"
	pageAcknowledge  = "acknowledge"
	pageInterstitial = "interstitial"
	pageValidation   = "validation"
	pageTabs         = "tabs"
	pageNotFound     = "not_found"
	pageError        = "error"
)

type pages struct {
	templates *template.Template
}

func newPages() *pages {
	return &pages{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// messagePage is the data of every page that only shows a message.
type messagePage struct {
	Message  string
	Location string
}

// render executes page into a buffer first, so a template failure still
// produces a clean 500.
func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl := p.templates.Lookup(page)
	if tmpl == nil {
		logger.FromRequest(r).Err(fmt.Errorf("%w: %s", ErrUnknownPage, page)).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
