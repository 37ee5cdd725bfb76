// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for outbound HTTP calls made on behalf of
// users.
//
// The primary abstraction is [TitleFetcher], which loads a web page and
// extracts its title so that bangs, bookmarks and reminders created from a
// bare URL get a readable name. Transport failures are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TitleFetcher loads pageURL and returns the text of its <title> element.
// It returns [ErrNoTitle] when the page has none.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, pageURL string) (string, error)
}
