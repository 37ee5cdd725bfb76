// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed wording the HTTP layer shows to users and
// reports from the health endpoint.
//
// Validation messages produced by the command handlers are built where the
// validation happens. Only the generic texts live here.
package app

const (
	// MsgPageNotFound is shown for unknown paths and missing tab groups.
	MsgPageNotFound = "Page not found"

	// MsgInternalServerError is shown when a request fails for a reason the
	// user cannot fix.
	MsgInternalServerError = "Something went wrong. Please try again."

	// MsgServiceUnavailable is shown when the database is unreachable or a
	// dependency timed out.
	MsgServiceUnavailable = "Service temporarily unavailable"
)

// Health statuses reported by /healthz.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
