// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the bang resolution engine.
//
// [Resolver] is the single entry point: it parses the raw query, consults the
// session's [TriggerCache], builds a redirect from a custom or built-in bang,
// runs a system command through the [CommandHandler], or falls back to a
// plain search. Anonymous visitors pass through the [AnonymousRateLimiter].
//
// Rejected commands surface as *[ValidationError]. Work that must not delay
// the response (bookmark inserts, page title fetches, usage counters) goes
// to a [TaskRunner].
package service
