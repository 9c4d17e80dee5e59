package model_test

import (
	"testing"

	"github.com/arllen133/writeir/filter"
	"github.com/arllen133/writeir/model"
	"github.com/stretchr/testify/assert"
)

func TestRecordFilterCombinedFilterOnlyReturnsFilterVerbatim(t *testing.T) {
	f := filter.Eq{Column: filter.Column{Name: "status"}, Value: "ACTIVE"}
	rf := model.NewRecordFilter(f)

	assert.Equal(t, f, rf.Combined())
}

func TestRecordFilterCombinedSelectorsOnlyBuildsOrOfAnd(t *testing.T) {
	id := model.FieldDescriptor{Name: "id", DBName: "id"}
	rf := model.RecordFilterFromSelectors([]model.SelectionResult{
		{{Field: id, Value: 1}},
		{{Field: id, Value: 2}},
	})

	want := filter.Or{
		filter.And{filter.Eq{Column: filter.Column{Name: "id"}, Value: 1}},
		filter.And{filter.Eq{Column: filter.Column{Name: "id"}, Value: 2}},
	}
	assert.Equal(t, want, rf.Combined())
}

// Invariant: when both Filter and Selectors are present, the executor must
// AND-combine them rather than pick one.
func TestRecordFilterCombinedAndsFilterWithSelectors(t *testing.T) {
	id := model.FieldDescriptor{Name: "id", DBName: "id"}
	f := filter.Eq{Column: filter.Column{Name: "tenant"}, Value: "acme"}
	rf := model.NewRecordFilter(f)
	rf.Selectors = []model.SelectionResult{{{Field: id, Value: 1}}}

	want := filter.And{
		f,
		filter.Or{filter.And{filter.Eq{Column: filter.Column{Name: "id"}, Value: 1}}},
	}
	assert.Equal(t, want, rf.Combined())
}

func TestRecordFilterCombinedEmptyReturnsNil(t *testing.T) {
	var rf model.RecordFilter
	assert.Nil(t, rf.Combined())
}
