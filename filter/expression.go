// Package filter implements the boolean-expression algebra used to describe
// a RecordFilter: the structured predicate a connector AND-combines with an
// optional set of pre-resolved selectors before executing an update, delete,
// or upsert.
package filter

import (
	"fmt"
	"strings"
)

// Columnar defines an interface for providing a column name.
type Columnar interface {
	ColumnName() string
}

// Column identifies a single field of a model, with an optional table
// qualifier for joined/aliased rendering.
type Column struct {
	Table string
	Name  string
}

// ColumnName returns the full column name (with table prefix if specified)
func (c Column) ColumnName() string {
	if c.Table != "" {
		return c.Table + "." + c.Name
	}
	return c.Name
}

var _ Columnar = Column{}

// Expression is the sealed base of every node of the filter algebra: a
// structured, connector-agnostic predicate. It carries no SQL-rendering
// capability of its own — producing an executable statement from it is the
// job of the out-of-scope connector body (spec.md §1), which inspects the
// concrete variant via a type switch, as Describe below does. isExpression
// is unexported, so every variant of the algebra must be declared in this
// package.
type Expression interface {
	isExpression()
}

// Eq represents an equality expression (column = value)
type Eq struct {
	Column Column
	Value  any
}

func (Eq) isExpression() {}

// Neq represents a not equal expression (column != value)
type Neq struct {
	Column Column
	Value  any
}

func (Neq) isExpression() {}

// Gt represents a greater than expression (column > value)
type Gt struct {
	Column Column
	Value  any
}

func (Gt) isExpression() {}

// Gte represents a greater than or equal expression (column >= value)
type Gte struct {
	Column Column
	Value  any
}

func (Gte) isExpression() {}

// Lt represents a less than expression (column < value)
type Lt struct {
	Column Column
	Value  any
}

func (Lt) isExpression() {}

// Lte represents a less than or equal expression (column <= value)
type Lte struct {
	Column Column
	Value  any
}

func (Lte) isExpression() {}

// Like represents a LIKE expression
type Like struct {
	Column Column
	Value  string
}

func (Like) isExpression() {}

// NotLike represents a NOT LIKE expression
type NotLike struct {
	Column Column
	Value  string
}

func (NotLike) isExpression() {}

// IsNull represents an IS NULL expression
type IsNull struct {
	Column Column
}

func (IsNull) isExpression() {}

// IsNotNull represents an IS NOT NULL expression
type IsNotNull struct {
	Column Column
}

func (IsNotNull) isExpression() {}

// IN represents an IN expression
type IN struct {
	Column Column
	Values []any
}

func (IN) isExpression() {}

// Between represents a BETWEEN expression
type Between struct {
	Column Column
	Min    any
	Max    any
}

func (Between) isExpression() {}

// And represents the conjunction of zero or more expressions; an empty And
// is the identity for AND (always true).
type And []Expression

func (And) isExpression() {}

// Or represents the disjunction of zero or more expressions; an empty Or is
// the identity for OR (always false).
type Or []Expression

func (Or) isExpression() {}

// Not represents the negation of a single expression.
type Not struct {
	Expr Expression
}

func (Not) isExpression() {}

// Describe renders expr as a human-readable, non-executable one-liner —
// used by the Write-IR nodes' String (Display) rendering (spec.md §4.1),
// never as input to a database driver. Unlike a SQL renderer it inlines
// literal values directly rather than emitting placeholders, since nothing
// downstream of Describe ever binds arguments to it.
func Describe(expr Expression) string {
	if expr == nil {
		return "<nil>"
	}

	switch e := expr.(type) {
	case Eq:
		return fmt.Sprintf("%s = %v", e.Column.ColumnName(), e.Value)
	case Neq:
		return fmt.Sprintf("%s != %v", e.Column.ColumnName(), e.Value)
	case Gt:
		return fmt.Sprintf("%s > %v", e.Column.ColumnName(), e.Value)
	case Gte:
		return fmt.Sprintf("%s >= %v", e.Column.ColumnName(), e.Value)
	case Lt:
		return fmt.Sprintf("%s < %v", e.Column.ColumnName(), e.Value)
	case Lte:
		return fmt.Sprintf("%s <= %v", e.Column.ColumnName(), e.Value)
	case Like:
		return fmt.Sprintf("%s LIKE %q", e.Column.ColumnName(), e.Value)
	case NotLike:
		return fmt.Sprintf("%s NOT LIKE %q", e.Column.ColumnName(), e.Value)
	case IsNull:
		return e.Column.ColumnName() + " IS NULL"
	case IsNotNull:
		return e.Column.ColumnName() + " IS NOT NULL"
	case IN:
		if len(e.Values) == 0 {
			return "false"
		}
		vals := make([]string, len(e.Values))
		for i, v := range e.Values {
			vals[i] = fmt.Sprintf("%v", v)
		}
		return fmt.Sprintf("%s IN (%s)", e.Column.ColumnName(), strings.Join(vals, ", "))
	case Between:
		return fmt.Sprintf("%s BETWEEN %v AND %v", e.Column.ColumnName(), e.Min, e.Max)
	case And:
		if len(e) == 0 {
			return "true"
		}
		parts := make([]string, len(e))
		for i, sub := range e {
			parts[i] = Describe(sub)
		}
		return "(" + strings.Join(parts, " AND ") + ")"
	case Or:
		if len(e) == 0 {
			return "false"
		}
		parts := make([]string, len(e))
		for i, sub := range e {
			parts[i] = Describe(sub)
		}
		return "(" + strings.Join(parts, " OR ") + ")"
	case Not:
		return "NOT " + Describe(e.Expr)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
