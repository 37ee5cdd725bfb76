// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bang

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-bangs/models"
)

var (
	bangTriggerPattern   = regexp.MustCompile(`^![A-Za-z0-9_.]+$`)
	directTriggerPattern = regexp.MustCompile(`^@[A-Za-z0-9_:.]+$`)

	// httpURLPattern matches the longest run of non-whitespace characters
	// starting at http:// or https://, query string and fragment included.
	httpURLPattern = regexp.MustCompile(`https?://\S+`)
)

// ParseQuery classifies a raw search box query.
//
//   - "!name rest..." is a bang. The first http(s) URL in the rest is
//     extracted into URL and the remaining words form SearchTerm.
//   - "@name rest..." is a direct command. SearchTerm is the rest.
//   - Anything else is a plain search and the whole trimmed input is the
//     SearchTerm. URLs are not extracted from plain queries.
//
// Triggers are lower-cased. ParseQuery keeps no state between calls.
func ParseQuery(raw string) models.ParsedQuery {
	query := strings.TrimSpace(raw)
	first, rest := splitFirstToken(query)

	switch {
	case bangTriggerPattern.MatchString(first):
		return parseBang(first, rest)
	case directTriggerPattern.MatchString(first):
		trigger := strings.ToLower(first)
		return models.ParsedQuery{
			CommandType:          models.CommandTypeDirect,
			Trigger:              trigger,
			TriggerWithoutPrefix: trigger[1:],
			SearchTerm:           rest,
			Remainder:            rest,
		}
	}

	return models.ParsedQuery{
		CommandType: models.CommandTypeNone,
		SearchTerm:  query,
	}
}

func parseBang(first, rest string) models.ParsedQuery {
	trigger := strings.ToLower(first)
	name := trigger[1:]

	parsed := models.ParsedQuery{
		CommandType:          models.CommandTypeBang,
		Trigger:              trigger,
		TriggerWithoutPrefix: name,
		Remainder:            rest,
		System:               SystemCommandFromName(name),
	}

	loc := httpURLPattern.FindStringIndex(rest)
	if loc == nil {
		parsed.SearchTerm = rest
		return parsed
	}

	parsed.URL = rest[loc[0]:loc[1]]
	parsed.SearchTerm = joinTrimmed(rest[:loc[0]], rest[loc[1]:])

	return parsed
}

// ExtractURL returns the first http(s) URL in s and s with that URL removed.
// The second result is s unchanged when no URL is present.
func ExtractURL(s string) (string, string) {
	loc := httpURLPattern.FindStringIndex(s)
	if loc == nil {
		return "", strings.TrimSpace(s)
	}
	return s[loc[0]:loc[1]], joinTrimmed(s[:loc[0]], s[loc[1]:])
}

// IsBangTrigger reports whether token would be parsed as a bang trigger.
func IsBangTrigger(token string) bool {
	return bangTriggerPattern.MatchString(token)
}

// IsHTTPURLToken reports whether token starts with http:// or https://.
func IsHTTPURLToken(token string) bool {
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}

func splitFirstToken(s string) (string, string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func joinTrimmed(before, after string) string {
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	switch {
	case before == "":
		return after
	case after == "":
		return before
	}
	return before + " " + after
}
