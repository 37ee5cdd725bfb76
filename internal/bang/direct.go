package bang

import (
	"net/url"
	"strings"
)

var directPaths = map[string]string{
	"a":         "/actions",
	"action":    "/actions",
	"actions":   "/actions",
	"bm":        "/bookmarks",
	"bookmark":  "/bookmarks",
	"bookmarks": "/bookmarks",
	"n":         "/notes",
	"note":      "/notes",
	"notes":     "/notes",
	"b":         "/bangs",
	"bang":      "/bangs",
	"bangs":     "/bangs",
	"s":         "/settings",
	"settings":  "/settings",
	"data":      "/settings/data",
	"api":       "/api-docs",
}

// DirectPath returns the in-app destination for a direct command name
// (without "@"). The lookup is case-insensitive. A non-empty searchTerm is
// appended as ?search=<term>.
func DirectPath(name, searchTerm string) (string, bool) {
	path, ok := directPaths[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	if searchTerm == "" {
		return path, true
	}
	return path + "?search=" + url.QueryEscape(searchTerm), true
}
