package zid

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every non-2xx response from the commerce API.
// The response body is not inspected.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.statusText())
}

func (e *APIError) statusText() string {
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}

// newAPIError builds an APIError from a response. resp.Status carries the code
// as a prefix ("404 Not Found"), so only the reason phrase is kept.
func newAPIError(resp *http.Response) *APIError {
	text := resp.Status
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if len(text) >= len(prefix) && text[:len(prefix)] == prefix {
		text = text[len(prefix):]
	}
	return &APIError{StatusCode: resp.StatusCode, Status: text}
}

// StatusCode extracts the remote HTTP status from err, if it carries one
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
