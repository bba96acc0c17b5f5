package vndb

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every response outside the 2xx range.
// Message holds the response body as sent by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("vndb: %d: %s", e.StatusCode, msg)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports whether err is a rejected or missing token.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsThrottled reports whether err is a rate limit response.
func IsThrottled(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}
