package filter_test

import (
	"testing"
	"time"

	"github.com/arllen133/writeir/filter"
	"github.com/stretchr/testify/assert"
)

func TestStringField(t *testing.T) {
	f := filter.NewString(filter.Column{Name: "email"})

	assert.Equal(t, filter.Like{Column: filter.Column{Name: "email"}, Value: "%@acme.test"}, f.Like("%@acme.test"))
	assert.Equal(t,
		filter.IN{Column: filter.Column{Name: "email"}, Values: []any{"a@x.test", "b@x.test"}},
		f.In("a@x.test", "b@x.test"),
	)
	assert.Equal(t,
		filter.Not{Expr: filter.IN{Column: filter.Column{Name: "email"}, Values: []any{"a@x.test"}}},
		f.NotIn("a@x.test"),
	)
}

func TestNumberField(t *testing.T) {
	f := filter.NewNumber[int](filter.Column{Name: "age"})

	assert.Equal(t, filter.Between{Column: filter.Column{Name: "age"}, Min: 18, Max: 65}, f.Between(18, 65))
	assert.Equal(t, filter.Gte{Column: filter.Column{Name: "age"}, Value: 21}, f.Gte(21))
}

func TestBoolField(t *testing.T) {
	f := filter.NewBool(filter.Column{Name: "active"})

	assert.Equal(t, filter.Eq{Column: filter.Column{Name: "active"}, Value: true}, f.IsTrue())
	assert.Equal(t, filter.Eq{Column: filter.Column{Name: "active"}, Value: false}, f.IsFalse())
}

func TestTimeField(t *testing.T) {
	f := filter.NewTime(filter.Column{Name: "created_at"})
	now := time.Now()

	assert.Equal(t, filter.Gt{Column: filter.Column{Name: "created_at"}, Value: now}, f.Gt(now))
}

func TestGenericField(t *testing.T) {
	f := filter.NewField[string](filter.Column{Name: "status"})

	assert.Equal(t, filter.Eq{Column: filter.Column{Name: "status"}, Value: "ACTIVE"}, f.Eq("ACTIVE"))

	withTable := f.WithTable("records")
	assert.Equal(t,
		filter.Eq{Column: filter.Column{Table: "records", Name: "status"}, Value: "ACTIVE"},
		withTable.Eq("ACTIVE"),
	)
}
