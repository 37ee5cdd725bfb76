// Package bang holds the pure building blocks of query resolution.
//
// Nothing in this package performs I/O on the request path: ParseQuery
// classifies a raw query, BuildRedirectURL turns a shortcut definition and a
// search term into a destination, ParseReminderTiming computes the next due
// instant of a reminder, and Catalog answers built-in trigger lookups from
// memory. The catalog is loaded once at startup from an embedded YAML file,
// optionally extended by an override file.
package bang
