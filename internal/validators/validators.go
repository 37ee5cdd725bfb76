package validators

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode"
)

// ValidateURL checks that s is an absolute http(s) URL with a host.
func ValidateURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(s)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return ErrUnsupportedScheme
	}

	if u.Hostname() == "" {
		return ErrMissingHost
	}

	return nil
}

// IsValidURL reports whether s passes ValidateURL.
func IsValidURL(s string) bool {
	return ValidateURL(s) == nil
}

// IsValidEmail reports whether s is a bare e-mail address ("a@b.c").
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, ok := strings.Cut(s, "@")
	return ok && strings.Contains(domain, ".")
}

// IsOnlyLettersAndNumbers reports whether s is non-empty and made only of
// letters and digits.
func IsOnlyLettersAndNumbers(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
