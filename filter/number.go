package filter

import "golang.org/x/exp/constraints"

// Number represents a filterable numeric field, supporting both integer and
// float types.
type Number[T constraints.Integer | constraints.Float] struct {
	column Column
}

// NewNumber constructs a Number field bound to the given column.
func NewNumber[T constraints.Integer | constraints.Float](column Column) Number[T] {
	return Number[T]{column: column}
}

// Column returns the underlying column for this field.
func (n Number[T]) Column() Column { return n.column }

// ColumnName implements the Columnar interface.
func (n Number[T]) ColumnName() string {
	return n.column.ColumnName()
}

var _ Columnar = Number[int]{}

// WithColumn returns a new Number field bound to the specified column name.
func (n Number[T]) WithColumn(name string) Number[T] {
	column := n.column
	column.Name = name
	return Number[T]{column: column}
}

// WithTable returns a new Number field bound to the specified table name.
func (n Number[T]) WithTable(name string) Number[T] {
	column := n.column
	column.Table = name
	return Number[T]{column: column}
}

// Eq creates an equality expression (field = value).
func (n Number[T]) Eq(value T) Expression {
	return Eq{Column: n.column, Value: value}
}

// Neq creates a not-equal expression (field != value).
func (n Number[T]) Neq(value T) Expression {
	return Neq{Column: n.column, Value: value}
}

// Gt creates a greater-than expression (field > value).
func (n Number[T]) Gt(value T) Expression {
	return Gt{Column: n.column, Value: value}
}

// Gte creates a greater-than-or-equal expression (field >= value).
func (n Number[T]) Gte(value T) Expression {
	return Gte{Column: n.column, Value: value}
}

// Lt creates a less-than expression (field < value).
func (n Number[T]) Lt(value T) Expression {
	return Lt{Column: n.column, Value: value}
}

// Lte creates a less-than-or-equal expression (field <= value).
func (n Number[T]) Lte(value T) Expression {
	return Lte{Column: n.column, Value: value}
}

// Between creates a range expression (field BETWEEN v1 AND v2).
func (n Number[T]) Between(v1, v2 T) Expression {
	return Between{Column: n.column, Min: v1, Max: v2}
}

// In creates an IN expression (field IN (values...)).
func (n Number[T]) In(values ...T) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return IN{Column: n.column, Values: interfaceValues}
}

// NotIn creates a NOT IN expression (field NOT IN (values...)).
func (n Number[T]) NotIn(values ...T) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return Not{Expr: IN{Column: n.column, Values: interfaceValues}}
}

// IsNull creates a NULL check expression (field IS NULL).
func (n Number[T]) IsNull() Expression {
	return IsNull{Column: n.column}
}

// IsNotNull creates a NOT NULL check expression (field IS NOT NULL).
func (n Number[T]) IsNotNull() Expression {
	return IsNotNull{Column: n.column}
}
