package model

import "github.com/arllen133/writeir/filter"

// RecordFilter pairs a structured boolean filter with an optional,
// already-resolved list of primary-identifier tuples that narrows the
// filter to exactly those rows. When Selectors is non-nil, an executor
// must AND-combine it with Filter.
type RecordFilter struct {
	Filter    filter.Expression
	Selectors []SelectionResult
}

// NewRecordFilter wraps a bare filter with no selectors, mirroring the
// `impl From<Filter> for RecordFilter` conversion used when a DeleteRecord
// first acquires a filter.
func NewRecordFilter(f filter.Expression) RecordFilter {
	return RecordFilter{Filter: f}
}

// RecordFilterFromSelectors builds a RecordFilter out of a bare selector
// list with no independent filter expression, mirroring the
// `impl From<Vec<SelectionResult>> for RecordFilter` conversion used when
// a DeleteRecord acquires selectors before it has any filter.
func RecordFilterFromSelectors(selectors []SelectionResult) RecordFilter {
	return RecordFilter{Selectors: selectors}
}

// HasSelectors reports whether an explicit selector list has been set.
func (rf RecordFilter) HasSelectors() bool {
	return rf.Selectors != nil
}

// Combined returns the single boolean expression an executor must actually
// evaluate: Filter AND-combined with the Selectors, when both are present.
// Each SelectionResult narrows the rows to exactly the tuple of values it
// carries, so the selector list as a whole is the disjunction of those
// per-result conjunctions — "this resolved row, or that one, or...".
func (rf RecordFilter) Combined() filter.Expression {
	if !rf.HasSelectors() {
		return rf.Filter
	}

	or := make(filter.Or, 0, len(rf.Selectors))
	for _, result := range rf.Selectors {
		and := make(filter.And, 0, len(result))
		for _, item := range result {
			and = append(and, filter.Eq{Column: filter.Column{Name: item.Field.DBName}, Value: item.Value})
		}
		or = append(or, and)
	}

	if rf.Filter == nil {
		return or
	}

	return filter.And{rf.Filter, or}
}
