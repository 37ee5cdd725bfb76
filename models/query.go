// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommandType classifies a raw query.
type CommandType string

const (
	// CommandTypeNone is a plain search query.
	CommandTypeNone CommandType = ""
	// CommandTypeBang is a query starting with "!name".
	CommandTypeBang CommandType = "bang"
	// CommandTypeDirect is a query starting with "@name".
	CommandTypeDirect CommandType = "direct"
)

// SystemCommand is the closed set of reserved bang names that mutate
// the user's data instead of redirecting.
type SystemCommand int

const (
	SystemCommandNone SystemCommand = iota
	SystemCommandBookmark
	SystemCommandAdd
	SystemCommandEdit
	SystemCommandDelete
	SystemCommandNote
	SystemCommandRemind
)

// String returns the reserved trigger name without the "!" prefix.
func (c SystemCommand) String() string {
	switch c {
	case SystemCommandBookmark:
		return "bm"
	case SystemCommandAdd:
		return "add"
	case SystemCommandEdit:
		return "edit"
	case SystemCommandDelete:
		return "del"
	case SystemCommandNote:
		return "note"
	case SystemCommandRemind:
		return "remind"
	}
	return ""
}

// ParsedQuery is the structured intent extracted from a raw query string.
//
// Empty strings stand for absent values: a plain search has an empty Trigger,
// and a bang without an http(s) URL has an empty URL.
type ParsedQuery struct {
	CommandType CommandType

	// Trigger is the first token including its "!" or "@" prefix, lower-cased.
	Trigger string

	// TriggerWithoutPrefix is Trigger without the leading "!" or "@".
	TriggerWithoutPrefix string

	// URL is the first http(s) URL found after a bang trigger.
	URL string

	// SearchTerm is the rest of the query with the extracted URL removed.
	SearchTerm string

	// Remainder is everything after the trigger token, trimmed, with no URL
	// extraction applied. System commands parse their own syntax from it.
	Remainder string

	// System is set when the trigger names a reserved system command.
	System SystemCommand
}

// IsSystemCommand reports whether the query invokes a reserved command.
func (q ParsedQuery) IsSystemCommand() bool {
	return q.CommandType == CommandTypeBang && q.System != SystemCommandNone
}
