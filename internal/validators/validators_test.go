package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
	}{
		{name: "https", url: "https://example.com/path?q=1#frag"},
		{name: "http with port", url: "http://localhost:8080"},
		{name: "empty", url: "  ", err: ErrEmptyURL},
		{name: "bad escape", url: "https://example.com/%zz", err: ErrInvalidURLFormat},
		{name: "ftp", url: "ftp://example.com", err: ErrUnsupportedScheme},
		{name: "no scheme", url: "example.com", err: ErrUnsupportedScheme},
		{name: "no host", url: "https://", err: ErrMissingHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.err == nil {
				assert.NoError(t, err)
				assert.True(t, IsValidURL(tt.url))
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, IsValidURL(tt.url))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("User <user@example.com>"))
	assert.False(t, IsValidEmail("user@localhost"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsOnlyLettersAndNumbers(t *testing.T) {
	assert.True(t, IsOnlyLettersAndNumbers("abc123"))
	assert.True(t, IsOnlyLettersAndNumbers("ÄÖü9"))
	assert.False(t, IsOnlyLettersAndNumbers(""))
	assert.False(t, IsOnlyLettersAndNumbers("with_underscore"))
	assert.False(t, IsOnlyLettersAndNumbers("dot.ted"))
}
