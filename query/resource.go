// Package query builds typed request bodies for the VNDB Kana API.
//
// Every queryable resource is a distinct string type whose values are that
// resource's selectable field paths. The resource type is also the type parameter
// of QueryBuilder and Query, so a field, sort choice or built query for one
// resource can not be used with another one.
package query

import "github.com/samber/lo"

// Selectable is satisfied by every type whose values are field paths accepted by
// the fields parameter of some endpoint.
type Selectable interface {
	~string
	fieldPaths() []string
}

// Resource is satisfied by the resources that can be searched with a POST query.
// It is sealed: only this package declares resources.
type Resource interface {
	Selectable
	endpoint() string
	sortable() []SortField
}

// VN identifies the /vn resource; its values are the selectable visual novel fields.
type VN string

// Release identifies the /release resource.
type Release string

// Producer identifies the /producer resource.
type Producer string

// Character identifies the /character resource.
type Character string

// Staff identifies the /staff resource.
type Staff string

// Tag identifies the /tag resource.
type Tag string

// Trait identifies the /trait resource.
type Trait string

// UList identifies the /ulist resource, a user's visual novel list.
type UList string

// User identifies the fields of the GET /user lookup.
type User string

// Label identifies the fields of the GET /ulist_labels lookup.
type Label string

func (VN) endpoint() string        { return "vn" }
func (Release) endpoint() string   { return "release" }
func (Producer) endpoint() string  { return "producer" }
func (Character) endpoint() string { return "character" }
func (Staff) endpoint() string     { return "staff" }
func (Tag) endpoint() string       { return "tag" }
func (Trait) endpoint() string     { return "trait" }
func (UList) endpoint() string     { return "ulist" }

// Endpoint returns the path segment the resource is searched on, e.g. "vn".
func Endpoint[R Resource]() string {
	var r R
	return r.endpoint()
}

// SortFields returns the sort keys the resource accepts, in the order the API documents them.
func SortFields[R Resource]() []SortField {
	var r R
	return append([]SortField(nil), r.sortable()...)
}

// paths converts a typed field list into plain strings.
func paths[F ~string](fields []F) []string {
	return lo.Map(fields, func(f F, _ int) string { return string(f) })
}

// prefixed nests every field of a related resource under prefix, e.g. "vn.".
func prefixed[F ~string, T ~string](prefix string, fields []F) []T {
	return lo.Map(fields, func(f F, _ int) T { return T(prefix + string(f)) })
}
