// Package session holds per-visitor state that survives between requests:
// the trigger cache of a signed-in user and the rate limit counters of an
// anonymous visitor. Sessions are identified by an opaque cookie value and
// kept in a [Store].
package session
