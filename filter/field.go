package filter

// Field represents a generic filterable field for any type.
// Use this for types that don't have a specific field type.
type Field[T any] struct {
	column Column
}

// NewField constructs a Field bound to the given column.
func NewField[T any](column Column) Field[T] {
	return Field[T]{column: column}
}

// Column returns the underlying column for this field.
func (f Field[T]) Column() Column { return f.column }

// ColumnName implements the Columnar interface.
func (f Field[T]) ColumnName() string {
	return f.column.ColumnName()
}

var _ Columnar = Field[any]{}

// WithColumn returns a new Field bound to the specified column name.
func (f Field[T]) WithColumn(name string) Field[T] {
	column := f.column
	column.Name = name
	return Field[T]{column: column}
}

// WithTable returns a new Field bound to the specified table name.
func (f Field[T]) WithTable(name string) Field[T] {
	column := f.column
	column.Table = name
	return Field[T]{column: column}
}

// Eq creates an equality expression (field = value).
func (f Field[T]) Eq(value T) Expression {
	return Eq{Column: f.column, Value: value}
}

// Neq creates a not-equal expression (field != value).
func (f Field[T]) Neq(value T) Expression {
	return Neq{Column: f.column, Value: value}
}

// In creates an IN expression (field IN (values...)).
func (f Field[T]) In(values ...T) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return IN{Column: f.column, Values: interfaceValues}
}

// NotIn creates a NOT IN expression (field NOT IN (values...)).
func (f Field[T]) NotIn(values ...T) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return Not{Expr: IN{Column: f.column, Values: interfaceValues}}
}

// IsNull creates a NULL check expression (field IS NULL).
func (f Field[T]) IsNull() Expression {
	return IsNull{Column: f.column}
}

// IsNotNull creates a NOT NULL check expression (field IS NOT NULL).
func (f Field[T]) IsNotNull() Expression {
	return IsNotNull{Column: f.column}
}
