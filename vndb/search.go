package vndb

import (
	"context"
	"net/http"

	"github.com/vnkit/vnkit/log"
	"github.com/vnkit/vnkit/query"
)

// search posts q to its endpoint and decodes one page of T.
func search[R query.Resource, T any](ctx context.Context, c *Client, q query.Query[R]) (*query.Response[T], error) {
	var response query.Response[T]
	if err := c.do(ctx, http.MethodPost, q.Endpoint(), nil, q, &response); err != nil {
		return nil, err
	}

	if keys := query.Unrequested(q, response); len(keys) > 0 {
		log.Warnf("%s: response carries unrequested fields %v", q.Endpoint(), keys)
	}

	return &response, nil
}

// VN queries visual novels.
func (c *Client) VN(ctx context.Context, q query.Query[query.VN]) (*query.Response[VisualNovel], error) {
	return search[query.VN, VisualNovel](ctx, c, q)
}

// Releases queries releases.
func (c *Client) Releases(ctx context.Context, q query.Query[query.Release]) (*query.Response[Release], error) {
	return search[query.Release, Release](ctx, c, q)
}

// Producers queries producers.
func (c *Client) Producers(ctx context.Context, q query.Query[query.Producer]) (*query.Response[Producer], error) {
	return search[query.Producer, Producer](ctx, c, q)
}

// Characters queries characters.
func (c *Client) Characters(ctx context.Context, q query.Query[query.Character]) (*query.Response[Character], error) {
	return search[query.Character, Character](ctx, c, q)
}

// Staff queries staff members.
func (c *Client) Staff(ctx context.Context, q query.Query[query.Staff]) (*query.Response[Staff], error) {
	return search[query.Staff, Staff](ctx, c, q)
}

// Tags queries tags.
func (c *Client) Tags(ctx context.Context, q query.Query[query.Tag]) (*query.Response[Tag], error) {
	return search[query.Tag, Tag](ctx, c, q)
}

// Traits queries traits.
func (c *Client) Traits(ctx context.Context, q query.Query[query.Trait]) (*query.Response[Trait], error) {
	return search[query.Trait, Trait](ctx, c, q)
}

// UList queries a user's visual novel list. The user is taken from the
// query, or from the token when the query names none.
func (c *Client) UList(ctx context.Context, q query.Query[query.UList]) (*query.Response[UListEntry], error) {
	return search[query.UList, UListEntry](ctx, c, q)
}
