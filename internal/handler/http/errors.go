// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionInContext is returned when a handler that needs the visitor
	// session runs outside the session middleware.
	ErrNoSessionInContext = errors.New("no session in request context")

	// ErrUnknownPage is returned when rendering a page template that does not
	// exist.
	ErrUnknownPage = errors.New("unknown page template")
)
