package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Operator compares a filter field with a value.
type Operator string

const (
	Eq Operator = "="
	Ne Operator = "!="
	Gt Operator = ">"
	Ge Operator = ">="
	Lt Operator = "<"
	Le Operator = "<="
)

var operators = []Operator{Eq, Ne, Gt, Ge, Lt, Le}

// Logic joins the children of a Compound filter.
type Logic string

const (
	LogicAnd Logic = "and"
	LogicOr  Logic = "or"
)

// Filter is a filter expression in the API's nested array syntax.
// It is implemented by Raw, Predicate and Compound.
type Filter interface {
	json.Marshaler
	fmt.Stringer
	filter()
}

// Raw is a filter the caller has already encoded. Text that is valid JSON is
// sent as is; anything else is sent as a JSON string, which is how the API
// accepts its compact filter representation. Raw text is never validated.
type Raw string

// Predicate is a single comparison, rendered as [field, operator, value].
// Value may itself be a Filter, which is how the API filters on related
// resources, e.g. ["release", "=", ["platform", "=", "win"]].
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Compound joins any number of filters with "and" or "or", rendered as
// [logic, child, child, ...]. Children keep their order. An empty compound is
// rendered as is and left for the API to reject.
type Compound struct {
	Op       Logic
	Children []Filter
}

func (Raw) filter()       {}
func (Predicate) filter() {}
func (Compound) filter()  {}

// Where builds a predicate.
func Where(field string, op Operator, value any) Predicate {
	return Predicate{Field: field, Op: op, Value: value}
}

// Search builds the fuzzy ["search", "=", text] predicate.
func Search(text string) Predicate {
	return Where("search", Eq, text)
}

// And joins filters that must all match.
func And(children ...Filter) Compound {
	return Compound{Op: LogicAnd, Children: children}
}

// Or joins filters of which at least one must match.
func Or(children ...Filter) Compound {
	return Compound{Op: LogicOr, Children: children}
}

func (r Raw) MarshalJSON() ([]byte, error) {
	text := bytes.TrimSpace([]byte(r))
	if len(text) > 0 && json.Valid(text) {
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, text); err != nil {
			return nil, err
		}
		return compacted.Bytes(), nil
	}

	return marshal(string(r))
}

func (p Predicate) MarshalJSON() ([]byte, error) {
	return marshal([]any{p.Field, p.Op, p.Value})
}

func (c Compound) MarshalJSON() ([]byte, error) {
	node := make([]any, 0, len(c.Children)+1)
	node = append(node, c.Op)
	for _, child := range c.Children {
		node = append(node, child)
	}

	return marshal(node)
}

func (r Raw) String() string       { return string(r) }
func (p Predicate) String() string { return Encode(p) }
func (c Compound) String() string  { return Encode(c) }

// Encode renders a filter in its wire syntax. A filter that can not be
// encoded, e.g. one holding a channel as a value, renders as "".
func Encode(f Filter) string {
	if f == nil {
		return ""
	}

	data, err := marshal(f)
	if err != nil {
		return ""
	}

	return string(data)
}

// ParseFilter decodes a filter from its wire syntax, such as the
// normalized_filters echo of a response. A JSON string decodes to Raw.
// Predicate values that are not filters themselves are kept as
// json.RawMessage so that they encode back unchanged.
func ParseFilter(data []byte) (Filter, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty filter")
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		return Raw(text), nil
	case '[':
		return parseNode(data)
	default:
		return nil, fmt.Errorf("filter must be an array or a string, got %s", data)
	}
}

func parseNode(data []byte) (Filter, error) {
	var node []json.RawMessage
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	if len(node) == 0 {
		return nil, errors.New("filter: empty array")
	}

	var head string
	if err := json.Unmarshal(node[0], &head); err != nil {
		return nil, fmt.Errorf("filter: first element must be a string, got %s", node[0])
	}

	if logic := Logic(head); logic == LogicAnd || logic == LogicOr {
		compound := Compound{Op: logic, Children: make([]Filter, 0, len(node)-1)}
		for _, raw := range node[1:] {
			child, err := parseNode(raw)
			if err != nil {
				return nil, err
			}
			compound.Children = append(compound.Children, child)
		}
		return compound, nil
	}

	if len(node) != 3 {
		return nil, fmt.Errorf("filter: predicate %q must have 3 elements, got %d", head, len(node))
	}

	var op Operator
	if err := json.Unmarshal(node[1], &op); err != nil || !lo.Contains(operators, op) {
		return nil, fmt.Errorf("filter: unknown operator %s", node[1])
	}

	return Predicate{Field: head, Op: op, Value: parseValue(node[2])}, nil
}

func parseValue(raw json.RawMessage) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if nested, err := parseNode(trimmed); err == nil {
			return nested
		}
	}

	return json.RawMessage(trimmed)
}

// marshal encodes v without escaping <, > and &, which appear in operators.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
