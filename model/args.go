package model

import "time"

// WriteArgsValue pairs a field descriptor with the value a write sets it
// to, keyed in WriteArgs by the field's datasource name.
type WriteArgsValue struct {
	Field FieldDescriptor
	Value any
}

// WriteArgs is a mapping of datasource-field-name to (field descriptor,
// value), carried by every Write-IR node that writes scalar values.
// Keys are unique per datasource-field-name; inserting twice for the same
// name overwrites the prior value.
type WriteArgs struct {
	values map[string]WriteArgsValue
	order  []string
}

// NewWriteArgs returns an empty WriteArgs.
func NewWriteArgs() WriteArgs {
	return WriteArgs{values: make(map[string]WriteArgsValue)}
}

// Insert sets the value for a field, keyed by its datasource name.
func (a *WriteArgs) Insert(field FieldDescriptor, value any) {
	if a.values == nil {
		a.values = make(map[string]WriteArgsValue)
	}
	if _, exists := a.values[field.DBName]; !exists {
		a.order = append(a.order, field.DBName)
	}
	a.values[field.DBName] = WriteArgsValue{Field: field, Value: value}
}

// Get returns the value stored for a datasource field name, if any.
func (a WriteArgs) Get(dbName string) (WriteArgsValue, bool) {
	v, ok := a.values[dbName]
	return v, ok
}

// Len reports how many fields are set.
func (a WriteArgs) Len() int { return len(a.order) }

// Range iterates the args in insertion order, stopping early if fn
// returns false.
func (a WriteArgs) Range(fn func(dbName string, v WriteArgsValue) bool) {
	for _, name := range a.order {
		if !fn(name, a.values[name]) {
			return
		}
	}
}

// UpdateDatetimes refreshes every field on model declared as an
// auto-managed timestamp (e.g. updatedAt) to the current time, inserting
// it into args if not already present.
func (a *WriteArgs) UpdateDatetimes(m Model) {
	now := time.Now()
	for _, f := range m.AutoUpdatedAtFields() {
		a.Insert(f, now)
	}
}
