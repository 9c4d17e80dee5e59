package filter

import "time"

// Time represents a filterable time/date field.
type Time struct {
	column Column
}

// NewTime constructs a Time field bound to the given column.
func NewTime(column Column) Time {
	return Time{column: column}
}

// Column returns the underlying column for this field.
func (t Time) Column() Column { return t.column }

// ColumnName implements the Columnar interface.
func (t Time) ColumnName() string {
	return t.column.ColumnName()
}

var _ Columnar = Time{}

// WithColumn returns a new Time field bound to the specified column name.
func (t Time) WithColumn(name string) Time {
	column := t.column
	column.Name = name
	return Time{column: column}
}

// WithTable returns a new Time field bound to the specified table name.
func (t Time) WithTable(name string) Time {
	column := t.column
	column.Table = name
	return Time{column: column}
}

// Eq creates an equality expression (field = value).
func (t Time) Eq(value time.Time) Expression {
	return Eq{Column: t.column, Value: value}
}

// Neq creates a not-equal expression (field != value).
func (t Time) Neq(value time.Time) Expression {
	return Neq{Column: t.column, Value: value}
}

// Gt creates a greater-than expression (field > value).
func (t Time) Gt(value time.Time) Expression {
	return Gt{Column: t.column, Value: value}
}

// Gte creates a greater-than-or-equal expression (field >= value).
func (t Time) Gte(value time.Time) Expression {
	return Gte{Column: t.column, Value: value}
}

// Lt creates a less-than expression (field < value).
func (t Time) Lt(value time.Time) Expression {
	return Lt{Column: t.column, Value: value}
}

// Lte creates a less-than-or-equal expression (field <= value).
func (t Time) Lte(value time.Time) Expression {
	return Lte{Column: t.column, Value: value}
}

// Between creates a range expression (field BETWEEN v1 AND v2).
func (t Time) Between(v1, v2 time.Time) Expression {
	return Between{Column: t.column, Min: v1, Max: v2}
}

// IsNull creates a NULL check expression (field IS NULL).
func (t Time) IsNull() Expression {
	return IsNull{Column: t.column}
}

// IsNotNull creates a NOT NULL check expression (field IS NOT NULL).
func (t Time) IsNotNull() Expression {
	return IsNotNull{Column: t.column}
}
