package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := http.StatusText(resp.StatusCode())

	switch {
	case resp.StatusCode() == http.StatusNotFound, resp.StatusCode() == http.StatusGone:
		return fmt.Errorf("%w: %s", ErrNotFound, status)
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, status)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %d %s", ErrUpstream, resp.StatusCode(), status)
	default:
		return fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
	}
}
