// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the syntactic checks shared by command handlers
// and other mutation flows: URL well-formedness, e-mail shape and trigger
// character rules. Destinations are never fetched or resolved here.
package validators
