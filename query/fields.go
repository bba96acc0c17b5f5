package query

import (
	"strings"

	"github.com/samber/lo"
)

// FieldChoices is an ordered selection of fields for one resource.
// Duplicates are kept; the server decides the order of fields in its response.
type FieldChoices[F Selectable] struct {
	fields []F
}

// NoFields selects nothing beyond the fields the API always returns (the id).
func NoFields[F Selectable]() FieldChoices[F] {
	return FieldChoices[F]{}
}

// FieldsOf selects exactly the given fields, in the given order.
func FieldsOf[F Selectable](fields ...F) FieldChoices[F] {
	return FieldChoices[F]{fields: append([]F(nil), fields...)}
}

// AllFields selects every known field of the resource in declaration order.
func AllFields[F Selectable]() FieldChoices[F] {
	var f F
	return FieldChoices[F]{
		fields: lo.Map(f.fieldPaths(), func(p string, _ int) F { return F(p) }),
	}
}

// ParseFields resolves field paths by name. Names that are not fields of the
// resource are returned separately, in input order.
func ParseFields[F Selectable](names []string) (FieldChoices[F], []string) {
	var f F
	known := f.fieldPaths()

	var (
		fields  []F
		unknown []string
	)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if lo.Contains(known, name) {
			fields = append(fields, F(name))
		} else {
			unknown = append(unknown, name)
		}
	}

	return FieldChoices[F]{fields: fields}, unknown
}

// KnownFields lists the field paths of the resource as plain strings.
func KnownFields[F Selectable]() []string {
	var f F
	return append([]string(nil), f.fieldPaths()...)
}

// Len returns the number of selected fields.
func (c FieldChoices[F]) Len() int {
	return len(c.fields)
}

// Paths returns a copy of the selected fields.
func (c FieldChoices[F]) Paths() []F {
	return append([]F(nil), c.fields...)
}

// CSV renders the selection as the value of the fields parameter.
// An empty selection renders as "".
func (c FieldChoices[F]) CSV() string {
	return strings.Join(paths(c.fields), ",")
}

// String implements fmt.Stringer.
func (c FieldChoices[F]) String() string {
	return c.CSV()
}
