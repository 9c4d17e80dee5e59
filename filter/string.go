package filter

// String represents a filterable string field.
type String struct {
	column Column
}

// NewString constructs a String field bound to the given column.
func NewString(column Column) String {
	return String{column: column}
}

// Column returns the underlying column for this field.
func (s String) Column() Column { return s.column }

// ColumnName implements the Columnar interface.
func (s String) ColumnName() string {
	return s.column.ColumnName()
}

var _ Columnar = String{}

// WithColumn returns a new String field bound to the specified column name.
func (s String) WithColumn(name string) String {
	column := s.column
	column.Name = name
	return String{column: column}
}

// WithTable returns a new String field bound to the specified table name.
func (s String) WithTable(name string) String {
	column := s.column
	column.Table = name
	return String{column: column}
}

// Eq creates an equality expression (field = value).
func (s String) Eq(value string) Expression {
	return Eq{Column: s.column, Value: value}
}

// Neq creates a not-equal expression (field != value).
func (s String) Neq(value string) Expression {
	return Neq{Column: s.column, Value: value}
}

// Like creates a LIKE expression (field LIKE pattern).
func (s String) Like(pattern string) Expression {
	return Like{Column: s.column, Value: pattern}
}

// NotLike creates a NOT LIKE expression (field NOT LIKE pattern).
func (s String) NotLike(pattern string) Expression {
	return NotLike{Column: s.column, Value: pattern}
}

// In creates an IN expression (field IN (values...)).
func (s String) In(values ...string) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return IN{Column: s.column, Values: interfaceValues}
}

// NotIn creates a NOT IN expression (field NOT IN (values...)).
func (s String) NotIn(values ...string) Expression {
	interfaceValues := make([]any, len(values))
	for i, v := range values {
		interfaceValues[i] = v
	}
	return Not{Expr: IN{Column: s.column, Values: interfaceValues}}
}

// IsNull creates a NULL check expression (field IS NULL).
func (s String) IsNull() Expression {
	return IsNull{Column: s.column}
}

// IsNotNull creates a NOT NULL check expression (field IS NOT NULL).
func (s String) IsNotNull() Expression {
	return IsNotNull{Column: s.column}
}
