package model

// SelectionItem pairs a field descriptor with the scalar value the
// datasource returned for it.
type SelectionItem struct {
	Field FieldDescriptor
	Value any
}

// SelectionResult is an ordered sequence of (field, value) pairs — the
// materialized output of a primary-identifier (or wider) projection after
// a write executes.
type SelectionResult []SelectionItem

// Selection returns the FieldSelection described by this result, in the
// same order the values were produced.
func (r SelectionResult) Selection() FieldSelection {
	fs := make(FieldSelection, len(r))
	for i, item := range r {
		fs[i] = item.Field
	}
	return fs
}
