// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errListen is returned when the HTTP address cannot be bound.
	errListen = errors.New("error listening on http address")
)
