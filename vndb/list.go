package vndb

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vnkit/vnkit/query"
)

// PatchUList adds the visual novel to the token owner's list or changes its entry.
// Fields the patch leaves unset are not touched.
func (c *Client) PatchUList(ctx context.Context, vnID string, patch query.UListPatch) error {
	return c.do(ctx, http.MethodPatch, "ulist/"+url.PathEscape(vnID), nil, patch, nil)
}

// RemoveUList removes the visual novel from the token owner's list.
func (c *Client) RemoveUList(ctx context.Context, vnID string) error {
	return c.do(ctx, http.MethodDelete, "ulist/"+url.PathEscape(vnID), nil, nil, nil)
}

// PatchRList adds the release to the token owner's list or changes its status.
func (c *Client) PatchRList(ctx context.Context, releaseID string, patch query.RListPatch) error {
	return c.do(ctx, http.MethodPatch, "rlist/"+url.PathEscape(releaseID), nil, patch, nil)
}

// RemoveRList removes the release from the token owner's list.
func (c *Client) RemoveRList(ctx context.Context, releaseID string) error {
	return c.do(ctx, http.MethodDelete, "rlist/"+url.PathEscape(releaseID), nil, nil, nil)
}
