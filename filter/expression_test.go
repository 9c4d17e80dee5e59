package filter_test

import (
	"testing"

	"github.com/arllen133/writeir/filter"
	"github.com/stretchr/testify/assert"
)

func col(name string) filter.Column {
	return filter.Column{Name: name}
}

func TestEqDescribe(t *testing.T) {
	e := filter.Eq{Column: col("status"), Value: "ACTIVE"}
	assert.Equal(t, "status = ACTIVE", filter.Describe(e))
}

func TestGtDescribe(t *testing.T) {
	e := filter.Gt{Column: col("age"), Value: 18}
	assert.Equal(t, "age > 18", filter.Describe(e))
}

func TestINDescribe(t *testing.T) {
	e := filter.IN{Column: col("id"), Values: []any{1, 2, 3}}
	assert.Equal(t, "id IN (1, 2, 3)", filter.Describe(e))
}

func TestINEmptyDescribe(t *testing.T) {
	e := filter.IN{Column: col("id")}
	assert.Equal(t, "false", filter.Describe(e))
}

func TestBetweenDescribe(t *testing.T) {
	e := filter.Between{Column: col("age"), Min: 18, Max: 65}
	assert.Equal(t, "age BETWEEN 18 AND 65", filter.Describe(e))
}

func TestAndDescribe(t *testing.T) {
	e := filter.And{
		filter.Eq{Column: col("status"), Value: "ACTIVE"},
		filter.Gt{Column: col("age"), Value: 18},
	}
	assert.Equal(t, "(status = ACTIVE AND age > 18)", filter.Describe(e))
}

func TestAndEmptyDescribe(t *testing.T) {
	assert.Equal(t, "true", filter.Describe(filter.And{}))
}

func TestOrDescribe(t *testing.T) {
	e := filter.Or{
		filter.Eq{Column: col("status"), Value: "ACTIVE"},
		filter.Eq{Column: col("status"), Value: "PENDING"},
	}
	assert.Equal(t, "(status = ACTIVE OR status = PENDING)", filter.Describe(e))
}

func TestOrEmptyDescribe(t *testing.T) {
	assert.Equal(t, "false", filter.Describe(filter.Or{}))
}

func TestNotDescribe(t *testing.T) {
	e := filter.Not{Expr: filter.Eq{Column: col("status"), Value: "ACTIVE"}}
	assert.Equal(t, "NOT status = ACTIVE", filter.Describe(e))
}

func TestNestedLogicDescribe(t *testing.T) {
	e := filter.And{
		filter.Eq{Column: col("tenant"), Value: "acme"},
		filter.Or{
			filter.Eq{Column: col("status"), Value: "ACTIVE"},
			filter.Eq{Column: col("status"), Value: "PENDING"},
		},
	}
	assert.Equal(t, "(tenant = acme AND (status = ACTIVE OR status = PENDING))", filter.Describe(e))
}

func TestColumnWithTable(t *testing.T) {
	c := filter.Column{Table: "users", Name: "id"}
	assert.Equal(t, "users.id", c.ColumnName())
}

func TestLikeDescribe(t *testing.T) {
	e := filter.Like{Column: col("name"), Value: "%smith%"}
	assert.Equal(t, `name LIKE "%smith%"`, filter.Describe(e))
}

func TestIsNullIsNotNullDescribe(t *testing.T) {
	assert.Equal(t, "deleted_at IS NULL", filter.Describe(filter.IsNull{Column: col("deleted_at")}))
	assert.Equal(t, "deleted_at IS NOT NULL", filter.Describe(filter.IsNotNull{Column: col("deleted_at")}))
}

func TestDescribeNil(t *testing.T) {
	assert.Equal(t, "<nil>", filter.Describe(nil))
}
