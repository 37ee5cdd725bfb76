// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. The server would have nothing to serve, so startup fails.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errMissingDependencies is returned when the services or the session
	// store were not built.
	errMissingDependencies = errors.New("handlers need services and a session store")
)
