package query

import (
	"github.com/samber/mo"
	"github.com/vnkit/vnkit/util"
)

const (
	// DefaultResults is the page size of a query that never set one.
	DefaultResults = 10

	// MaxResults is the largest page size the API serves.
	MaxResults = 100
)

// QueryBuilder stages a query for the resource R.
//
// Every setter returns a modified copy and leaves its receiver untouched, so
// a builder can be branched freely and nothing done to it after Build can
// reach the built Query.
type QueryBuilder[R Resource] struct {
	filters           Filter
	fields            FieldChoices[R]
	sort              SortField
	reverse           bool
	results           int
	page              int
	user              mo.Option[string]
	count             bool
	compactFilters    bool
	normalizedFilters bool
}

// New starts a query for R with the API defaults: sorted by id, ascending,
// 10 results, first page, no response flags.
func New[R Resource]() QueryBuilder[R] {
	return QueryBuilder[R]{
		sort:    SortID,
		results: DefaultResults,
		page:    1,
	}
}

// Filters sets the filter expression. A later call replaces the earlier one.
func (b QueryBuilder[R]) Filters(f Filter) QueryBuilder[R] {
	b.filters = f
	return b
}

// RawFilters is Filters(Raw(text)).
func (b QueryBuilder[R]) RawFilters(text string) QueryBuilder[R] {
	return b.Filters(Raw(text))
}

// Fields sets which fields every result carries besides its id.
func (b QueryBuilder[R]) Fields(fields FieldChoices[R]) QueryBuilder[R] {
	b.fields = fields
	return b
}

// Sort orders the results by field. A field that R can not be sorted by is
// ignored and the previous sort order is kept.
func (b QueryBuilder[R]) Sort(field SortField) QueryBuilder[R] {
	var r R
	b.sort = pickSort(b.sort, field, r.sortable())
	return b
}

// Reverse sorts in descending order. Calling it more than once has no further effect.
func (b QueryBuilder[R]) Reverse() QueryBuilder[R] {
	b.reverse = true
	return b
}

// Results sets the page size, clamped to [0, MaxResults].
// Zero results is useful together with Count.
func (b QueryBuilder[R]) Results(n int) QueryBuilder[R] {
	b.results = util.Clamp(n, 0, MaxResults)
	return b
}

// Page selects the page, starting from 1. It is passed as is.
func (b QueryBuilder[R]) Page(n int) QueryBuilder[R] {
	b.page = n
	return b
}

// User sets the user whose list is queried. Resources other than UList accept
// it as well and the API ignores it there.
func (b QueryBuilder[R]) User(id string) QueryBuilder[R] {
	b.user = mo.Some(id)
	return b
}

// Count asks for the total number of matching entries.
func (b QueryBuilder[R]) Count() QueryBuilder[R] {
	b.count = true
	return b
}

// CompactFilters asks for the compact string form of the filter.
func (b QueryBuilder[R]) CompactFilters() QueryBuilder[R] {
	b.compactFilters = true
	return b
}

// NormalizedFilters asks for the normalized array form of the filter.
func (b QueryBuilder[R]) NormalizedFilters() QueryBuilder[R] {
	b.normalizedFilters = true
	return b
}

// Build freezes the staged values into a Query.
func (b QueryBuilder[R]) Build() Query[R] {
	return Query[R]{
		filters:           b.filters,
		fields:            b.fields.CSV(),
		sort:              b.sort,
		reverse:           b.reverse,
		results:           b.results,
		page:              b.page,
		user:              b.user,
		count:             b.count,
		compactFilters:    b.compactFilters,
		normalizedFilters: b.normalizedFilters,
	}
}

// Query is a built, read-only request for the resource R. It is only
// obtainable from QueryBuilder.Build; the zero value is an empty query.
type Query[R Resource] struct {
	filters           Filter
	fields            string
	sort              SortField
	reverse           bool
	results           int
	page              int
	user              mo.Option[string]
	count             bool
	compactFilters    bool
	normalizedFilters bool
}

// Endpoint returns the path segment the query is sent to.
func (q Query[R]) Endpoint() string { return Endpoint[R]() }

func (q Query[R]) Filters() Filter         { return q.filters }
func (q Query[R]) Fields() string          { return q.fields }
func (q Query[R]) Sort() SortField         { return q.sort }
func (q Query[R]) Reverse() bool           { return q.reverse }
func (q Query[R]) Results() int            { return q.results }
func (q Query[R]) Page() int               { return q.page }
func (q Query[R]) User() mo.Option[string] { return q.user }
func (q Query[R]) Count() bool             { return q.count }
func (q Query[R]) CompactFilters() bool    { return q.compactFilters }
func (q Query[R]) NormalizedFilters() bool { return q.normalizedFilters }

type wireQuery struct {
	Filters           Filter    `json:"filters,omitempty"`
	Fields            string    `json:"fields,omitempty"`
	Sort              SortField `json:"sort,omitempty"`
	Reverse           bool      `json:"reverse"`
	Results           int       `json:"results"`
	Page              int       `json:"page"`
	User              *string   `json:"user,omitempty"`
	Count             bool      `json:"count"`
	CompactFilters    bool      `json:"compact_filters"`
	NormalizedFilters bool      `json:"normalized_filters"`
}

// MarshalJSON renders the request body. Unset filters, fields and user are
// left out rather than sent empty. A user set to "" is sent as given.
func (q Query[R]) MarshalJSON() ([]byte, error) {
	var user *string
	if id, ok := q.user.Get(); ok {
		user = &id
	}

	return marshal(wireQuery{
		Filters:           q.filters,
		Fields:            q.fields,
		Sort:              q.sort,
		Reverse:           q.reverse,
		Results:           q.results,
		Page:              q.page,
		User:              user,
		Count:             q.count,
		CompactFilters:    q.compactFilters,
		NormalizedFilters: q.normalizedFilters,
	})
}
