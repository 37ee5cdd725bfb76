package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// maxRedirects bounds how many hops an outbound request follows.
const maxRedirects = 5

// HTTPClient wraps resty.Client for outbound requests made by the service.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with the given per-request
// timeout and User-Agent. A zero timeout leaves resty's default in place and
// an empty userAgent sends none.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
