// Package network provides the HTTP client shared by every outgoing request.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request unless api.timeout says otherwise.
const DefaultTimeout = time.Minute

// Client is the HTTP client shared across the application.
var Client = NewClient(DefaultTimeout)

// NewClient returns a client on a private copy of the default transport.
// A non-positive timeout means no timeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}
