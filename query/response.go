package query

import (
	"encoding/json"
	"errors"

	"github.com/samber/mo"
)

// Response is one page of results of a POST query.
// Results are kept in the order the API returned them.
type Response[T any] struct {
	Results []T  `json:"results"`
	More    bool `json:"more"`

	// Count is present when the query asked for it.
	Count mo.Option[int] `json:"count"`

	// CompactFilters is present when the query asked for it.
	CompactFilters mo.Option[string] `json:"compact_filters"`

	// NormalizedFilters is present when the query asked for it. See Filter.
	NormalizedFilters mo.Option[json.RawMessage] `json:"normalized_filters"`
}

type wireResponse[T any] struct {
	Results           []T              `json:"results"`
	More              bool             `json:"more"`
	Count             *int             `json:"count,omitempty"`
	CompactFilters    *string          `json:"compact_filters,omitempty"`
	NormalizedFilters *json.RawMessage `json:"normalized_filters,omitempty"`
}

// MarshalJSON writes every echo that is present, zero values included,
// and leaves the absent ones out.
func (r Response[T]) MarshalJSON() ([]byte, error) {
	wire := wireResponse[T]{
		Results: r.Results,
		More:    r.More,
	}
	if count, ok := r.Count.Get(); ok {
		wire.Count = &count
	}
	if compact, ok := r.CompactFilters.Get(); ok {
		wire.CompactFilters = &compact
	}
	if normalized, ok := r.NormalizedFilters.Get(); ok {
		wire.NormalizedFilters = &normalized
	}

	return marshal(wire)
}

// Filter decodes the normalized filter echo.
func (r Response[T]) Filter() (Filter, error) {
	raw, ok := r.NormalizedFilters.Get()
	if !ok {
		return nil, errors.New("response carries no normalized filters")
	}

	return ParseFilter(raw)
}

// Unrequested lists the echo fields that are present although q did not ask for them.
func Unrequested[R Resource, T any](q Query[R], r Response[T]) []string {
	var keys []string
	if r.Count.IsPresent() && !q.Count() {
		keys = append(keys, "count")
	}
	if r.CompactFilters.IsPresent() && !q.CompactFilters() {
		keys = append(keys, "compact_filters")
	}
	if r.NormalizedFilters.IsPresent() && !q.NormalizedFilters() {
		keys = append(keys, "normalized_filters")
	}

	return keys
}
