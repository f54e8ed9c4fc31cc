// Package query compiles user-supplied filter triples into an executable
// query plan, enforcing the single-inequality-field restriction of the
// backing index before any I/O happens.
package query

import (
	"errors"
	"fmt"
	"strconv"
)

// Compile failure modes.
var (
	// ErrInvalidFilter is returned for an unresolved field or operator
	// name, or an inequality operator on a repeated field.
	ErrInvalidFilter = errors.New("filter contains invalid field or operator")
	// ErrInvalidFilterValue is returned when a value cannot be coerced to
	// the field's declared type.
	ErrInvalidFilterValue = errors.New("filter value has wrong type")
	// ErrMultipleInequalityFilters is returned when two or more distinct
	// fields carry non-equality operators in one filter set.
	ErrMultipleInequalityFilters = errors.New("inequality filter is allowed on only one field")
)

// Operator is a comparison operator in its storage form.
type Operator string

const (
	OpEq   Operator = "="
	OpGt   Operator = ">"
	OpGtEq Operator = ">="
	OpLt   Operator = "<"
	OpLtEq Operator = "<="
	OpNe   Operator = "!="
)

// operators maps the wire operator names to storage operators.
var operators = map[string]Operator{
	"EQ":   OpEq,
	"GT":   OpGt,
	"GTEQ": OpGtEq,
	"LT":   OpLt,
	"LTEQ": OpLtEq,
	"NE":   OpNe,
}

// FieldType is the declared value type of a filterable field.
type FieldType int

const (
	FieldString FieldType = iota
	FieldInt
)

// Field describes one filterable field of an entity kind.
type Field struct {
	// Column is the storage column the field maps to and doubles as the
	// plan's sort key name.
	Column string
	Type   FieldType
	// Repeated marks array-valued fields; equality on them means
	// membership and inequality operators are rejected.
	Repeated bool
}

// FieldSet is the filterable-field enumeration of one entity kind, keyed
// by wire field name.
type FieldSet map[string]Field

// ConferenceFields enumerates the filterable conference fields.
var ConferenceFields = FieldSet{
	"CITY":          {Column: "city", Type: FieldString},
	"TOPIC":         {Column: "topics", Type: FieldString, Repeated: true},
	"MONTH":         {Column: "month", Type: FieldInt},
	"MAX_ATTENDEES": {Column: "max_attendees", Type: FieldInt},
}

// SessionFields enumerates the filterable session fields. Kept as a
// separate table from ConferenceFields; the two kinds are filtered
// against different enumerations.
var SessionFields = FieldSet{
	"START_TIME":       {Column: "start_time", Type: FieldString},
	"DURATION_IN_MINS": {Column: "duration_mins", Type: FieldInt},
	"TYPE_OF_SESSION":  {Column: "session_type", Type: FieldString},
	"LOCATION":         {Column: "location", Type: FieldString},
}

// Filter is one raw user-supplied (field, operator, value) triple.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Condition is one resolved, typed comparison of the compiled plan.
type Condition struct {
	Field Field
	Op    Operator
	Value any
}

// Plan is a compiled, ordered query plan: conditions in submission order,
// sorted by the lone inequality field if one exists, with the entity name
// as an always-applied tiebreak.
type Plan struct {
	Conditions []Condition
	// InequalityColumn is the primary sort key, empty when the filter set
	// holds no inequality.
	InequalityColumn string
}

// Compile validates and normalizes the raw filters against the field set
// of one entity kind. It returns the whole plan or the first failure; no
// partial plan is ever returned.
func Compile(fields FieldSet, raw []Filter) (*Plan, error) {
	plan := &Plan{Conditions: make([]Condition, 0, len(raw))}

	for _, f := range raw {
		field, ok := fields[f.Field]
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidFilter, f.Field)
		}
		op, ok := operators[f.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrInvalidFilter, f.Operator)
		}

		if op != OpEq {
			if field.Repeated {
				return nil, fmt.Errorf("%w: inequality on repeated field %q", ErrInvalidFilter, f.Field)
			}
			// The backing index supports a range filter on at most one
			// property per query; catch violations before any I/O.
			if plan.InequalityColumn != "" && plan.InequalityColumn != field.Column {
				return nil, ErrMultipleInequalityFilters
			}
			plan.InequalityColumn = field.Column
		}

		value, err := coerce(field, f.Value)
		if err != nil {
			return nil, err
		}
		plan.Conditions = append(plan.Conditions, Condition{Field: field, Op: op, Value: value})
	}
	return plan, nil
}

func coerce(field Field, value string) (any, error) {
	switch field.Type {
	case FieldInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidFilterValue, value)
		}
		return n, nil
	default:
		return value, nil
	}
}

// OrderColumns returns the plan's sort keys: the inequality column first
// when present, then the stable name tiebreak.
func (p *Plan) OrderColumns() []string {
	if p.InequalityColumn != "" && p.InequalityColumn != "name" {
		return []string{p.InequalityColumn, "name"}
	}
	return []string{"name"}
}
