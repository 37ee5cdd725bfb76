package bang

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bangs/models"
)

const (
	placeholderTriple = "{{{s}}}"
	placeholderQuery  = "{query}"
)

// placeholderProbe makes templates with a placeholder inside the host parseable.
var placeholderProbe = strings.NewReplacer(placeholderTriple, "s", placeholderQuery, "s")

// BuildRedirectURL turns a shortcut definition and a search term into a
// destination URL.
//
// The first {{{s}}} or {query} placeholder in the template is replaced with
// the percent-encoded search term. An empty or unusable template falls back to
// https://<domain>. A template with a placeholder and no search term is a pure
// homepage visit and goes to https://<domain>.
//
// Path-relative templates are resolved against https://<domain> only when the
// search term is empty; with a search term the relative path is returned
// as is. An empty result means no destination could be built.
func BuildRedirectURL(b models.Bang, searchTerm string) string {
	template := strings.TrimSpace(b.URLTemplate)
	home := homeURL(b.Domain)

	u, err := url.Parse(placeholderProbe.Replace(template))
	if template == "" || err != nil {
		return home
	}

	switch {
	case u.Scheme == "" && u.Host != "":
		// protocol-relative
		template = "https:" + template
	case u.Scheme == "" && strings.HasPrefix(template, "/"):
		if searchTerm != "" {
			return substitute(template, searchTerm)
		}
		if home == "" {
			return substitute(template, "")
		}
		return resolveAgainst(home, substitute(template, ""))
	case !isHTTPScheme(u.Scheme) || u.Host == "":
		return home
	}

	if searchTerm == "" && hasPlaceholder(template) {
		if home != "" {
			return home
		}
		return originOf(template)
	}

	return substitute(template, searchTerm)
}

// IsValidDestination reports whether s can be sent in a Location header:
// an absolute http(s) URL with a host, or a path-relative URL.
func IsValidDestination(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && isHTTPScheme(u.Scheme) && u.Host != ""
}

// EncodeSearchTerm percent-encodes a search term for use inside a URL,
// encoding spaces as %20.
func EncodeSearchTerm(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}

func substitute(template, searchTerm string) string {
	idx, placeholder := firstPlaceholder(template)
	if idx < 0 {
		return template
	}
	return template[:idx] + EncodeSearchTerm(searchTerm) + template[idx+len(placeholder):]
}

func firstPlaceholder(template string) (int, string) {
	triple := strings.Index(template, placeholderTriple)
	query := strings.Index(template, placeholderQuery)

	switch {
	case triple < 0 && query < 0:
		return -1, ""
	case query < 0 || (triple >= 0 && triple < query):
		return triple, placeholderTriple
	}
	return query, placeholderQuery
}

func hasPlaceholder(template string) bool {
	idx, _ := firstPlaceholder(template)
	return idx >= 0
}

func homeURL(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + strings.TrimSuffix(domain, "/")
}

func resolveAgainst(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return baseURL.ResolveReference(refURL).String()
}

func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func isHTTPScheme(scheme string) bool {
	scheme = strings.ToLower(scheme)
	return scheme == "http" || scheme == "https"
}
