package vndb

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/vnkit/vnkit/query"
)

// ErrNoUsers is returned by Users when no name or id is given.
var ErrNoUsers = errors.New("vndb: no users to look up")

// Stats returns database statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AuthInfo returns the user and permissions of the configured token.
func (c *Client) AuthInfo(ctx context.Context) (*AuthInfo, error) {
	var info AuthInfo
	if err := c.do(ctx, http.MethodGet, "authinfo", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Users looks up users by name or id.
func (c *Client) Users(ctx context.Context, names []string, fields query.FieldChoices[query.User]) (UserSearch, error) {
	if len(names) == 0 {
		return nil, ErrNoUsers
	}

	params := url.Values{"q": names}
	if fields.Len() > 0 {
		params.Set("fields", fields.CSV())
	}

	var users UserSearch
	if err := c.do(ctx, http.MethodGet, "user", params, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UListLabels lists the labels of user. An empty user means the owner of the token.
func (c *Client) UListLabels(ctx context.Context, user string, fields query.FieldChoices[query.Label]) (*UListLabels, error) {
	params := url.Values{}
	if user != "" {
		params.Set("user", user)
	}
	if fields.Len() > 0 {
		params.Set("fields", fields.CSV())
	}

	var labels UListLabels
	if err := c.do(ctx, http.MethodGet, "ulist_labels", params, nil, &labels); err != nil {
		return nil, err
	}
	return &labels, nil
}
