// Package vndb sends queries built with package query to the VNDB Kana API
// and decodes the answers into typed records.
//
// Every method issues exactly one request. Errors from the server are
// returned as *APIError with the body untouched.
package vndb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vnkit/vnkit/constant"
	"github.com/vnkit/vnkit/log"
	"github.com/vnkit/vnkit/network"
	"github.com/vnkit/vnkit/util"
)

// maxErrorBody bounds how much of a failed response is kept as the message.
const maxErrorBody = 64 << 10

// Client talks to one API endpoint. It is safe for concurrent use.
type Client struct {
	endpoint  string
	token     string
	userAgent string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at another API root.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithToken authenticates every request with the given API token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithHTTPClient replaces the shared HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// New returns a client for the public API unless told otherwise.
func New(options ...Option) *Client {
	c := &Client{
		endpoint:  constant.APIEndpoint,
		userAgent: constant.UserAgent,
		http:      network.Client,
	}

	for _, option := range options {
		option(c)
	}

	c.endpoint = strings.TrimSuffix(c.endpoint, "/")
	return c
}

// Endpoint returns the API root requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Authenticated reports whether a token is attached to requests.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	target := c.endpoint + "/" + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		encoder := json.NewEncoder(buf)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(body); err != nil {
			return fmt.Errorf("vndb %s: encode: %w", path, err)
		}
		payload = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("vndb %s: %w", path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	entry := log.With(log.Fields{"method": method, "path": path})
	entry.Info("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		entry.Error(err)
		return fmt.Errorf("vndb %s: %w", path, err)
	}
	defer util.Ignore(resp.Body.Close)

	entry = entry.WithField("status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(message)}
		entry.Error(apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		entry.Info("done")
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		entry.Errorf("decode: %s", err)
		return fmt.Errorf("vndb %s: decode: %w", path, err)
	}

	entry.Info("done")
	return nil
}
