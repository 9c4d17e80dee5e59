package filter

// Bool represents a filterable boolean field.
type Bool struct {
	column Column
}

// NewBool constructs a Bool field bound to the given column.
func NewBool(column Column) Bool {
	return Bool{column: column}
}

// Column returns the underlying column for this field.
func (b Bool) Column() Column { return b.column }

// ColumnName implements the Columnar interface.
func (b Bool) ColumnName() string {
	return b.column.ColumnName()
}

var _ Columnar = Bool{}

// WithColumn returns a new Bool field bound to the specified column name.
func (b Bool) WithColumn(name string) Bool {
	column := b.column
	column.Name = name
	return Bool{column: column}
}

// WithTable returns a new Bool field bound to the specified table name.
func (b Bool) WithTable(name string) Bool {
	column := b.column
	column.Table = name
	return Bool{column: column}
}

// Eq creates an equality expression (field = value).
func (b Bool) Eq(value bool) Expression {
	return Eq{Column: b.column, Value: value}
}

// Neq creates a not-equal expression (field != value).
func (b Bool) Neq(value bool) Expression {
	return Neq{Column: b.column, Value: value}
}

// IsTrue creates a TRUE check expression (field = TRUE).
func (b Bool) IsTrue() Expression {
	return Eq{Column: b.column, Value: true}
}

// IsFalse creates a FALSE check expression (field = FALSE).
func (b Bool) IsFalse() Expression {
	return Eq{Column: b.column, Value: false}
}

// IsNull creates a NULL check expression (field IS NULL).
func (b Bool) IsNull() Expression {
	return IsNull{Column: b.column}
}

// IsNotNull creates a NOT NULL check expression (field IS NOT NULL).
func (b Bool) IsNotNull() Expression {
	return IsNotNull{Column: b.column}
}
