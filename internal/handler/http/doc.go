// Package http is the HTTP transport of the bang service.
//
// Every query typed into the browser search box arrives at the search route
// and leaves as exactly one response: a redirect, an inline acknowledgment,
// a rate-limit interstitial or a validation page. The middleware chain attaches
// the trace id, the visitor session and, when a valid token is presented,
// the signed-in user before the request reaches the service layer.
package http
