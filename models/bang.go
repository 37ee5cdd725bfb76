// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BangKind describes how a shortcut turns a search term into a destination.
type BangKind string

const (
	// BangKindSearch shortcuts substitute the search term into the URL template.
	BangKindSearch BangKind = "search"
	// BangKindRedirect shortcuts point at a fixed destination.
	BangKindRedirect BangKind = "redirect"
)

// Bang is a shortcut ("!name") mapping a trigger to a destination URL template.
//
// Built-in bangs come from the catalog and have a zero UserID. Custom bangs
// belong to exactly one user and may shadow a built-in with the same trigger.
type Bang struct {
	// ID is the database identifier. Zero for built-in bangs.
	ID int64 `json:"id,omitempty"`

	// UserID is the owner. Zero for built-in bangs.
	UserID int64 `json:"user_id,omitempty"`

	// Trigger is the lower-cased "!name" string the user types.
	Trigger string `json:"trigger" yaml:"trigger"`

	// Name is the human readable display name.
	Name string `json:"name" yaml:"name"`

	// Kind is either search or redirect.
	Kind BangKind `json:"kind" yaml:"kind"`

	// URLTemplate is the destination, optionally embedding {{{s}}} or {query}.
	URLTemplate string `json:"url" yaml:"url"`

	// Domain is the home domain used when the template is unusable or relative.
	Domain string `json:"domain,omitempty" yaml:"domain"`

	// Category groups built-in bangs for listing pages.
	Category string `json:"category,omitempty" yaml:"category"`

	Hidden     bool       `json:"hidden"`
	UsageCount int64      `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsBuiltIn reports whether the bang comes from the catalog rather than a user.
func (b Bang) IsBuiltIn() bool {
	return b.UserID == 0
}

// BangUpdate is a partial update of a custom bang applied by !edit.
// Nil fields are left untouched.
type BangUpdate struct {
	UserID  int64
	Trigger string

	NewTrigger *string
	NewURL     *string
	NewName    *string
}

// IsEmpty reports whether the update changes nothing.
func (u BangUpdate) IsEmpty() bool {
	return u.NewTrigger == nil && u.NewURL == nil && u.NewName == nil
}
