package connector_test

import (
	"testing"

	"github.com/arllen133/writeir/connector"
	"github.com/stretchr/testify/assert"
)

func TestPostgreSQLUpsertClauseUppercaseExcluded(t *testing.T) {
	d := connector.PostgreSQLDialect{}
	clause := d.UpsertClause([]string{"id"}, []string{"name"})
	assert.Equal(t, "ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name", clause)
}

func TestSQLiteUpsertClauseLowercaseExcluded(t *testing.T) {
	d := connector.SQLiteDialect{}
	clause := d.UpsertClause([]string{"id"}, []string{"name"})
	assert.Equal(t, "ON CONFLICT (id) DO UPDATE SET name=excluded.name", clause)
}

func TestUpsertClauseDoNothingWhenNoUpdateCols(t *testing.T) {
	d := connector.PostgreSQLDialect{}
	assert.Equal(t, "ON CONFLICT (id) DO NOTHING", d.UpsertClause([]string{"id"}, nil))
}

func TestMySQLUpsertClauseUsesValues(t *testing.T) {
	d := connector.MySQLDialect{}
	clause := d.UpsertClause(nil, []string{"name", "email"})
	assert.Equal(t, "ON DUPLICATE KEY UPDATE name=VALUES(name), email=VALUES(email)", clause)
}

func TestMySQLUpsertClauseEmptyWithNoUpdateCols(t *testing.T) {
	d := connector.MySQLDialect{}
	assert.Equal(t, "", d.UpsertClause([]string{"id"}, nil))
}

func TestCockroachDBDialectIdenticalWrappingOfPostgres(t *testing.T) {
	pg := connector.PostgreSQLDialect{}
	crdb := connector.CockroachDBDialect{}

	assert.Equal(t, "cockroachdb", crdb.Name())
	assert.Equal(t, pg.PlaceholderFormat(), crdb.PlaceholderFormat())
	assert.Equal(t,
		pg.UpsertClause([]string{"id"}, []string{"name"}),
		crdb.UpsertClause([]string{"id"}, []string{"name"}),
	)
}

func TestMongoDialectIsNoOp(t *testing.T) {
	d := connector.MongoDialect{}
	assert.Equal(t, "", d.UpsertClause([]string{"id"}, []string{"name"}))
}

func TestDialectForKnownProviders(t *testing.T) {
	cases := []struct {
		provider connector.Provider
		name     string
	}{
		{connector.SQLite, "sqlite"},
		{connector.MySQL, "mysql"},
		{connector.PostgreSQL, "postgresql"},
		{connector.Postgres, "postgresql"},
		{connector.CockroachDB, "cockroachdb"},
		{connector.SQLServer, "sqlserver"},
		{connector.MongoDB, "mongodb"},
	}
	for _, tc := range cases {
		d, ok := connector.DialectFor(tc.provider)
		assert.True(t, ok, tc.provider)
		assert.Equal(t, tc.name, d.Name())
	}
}

func TestDialectForJSBridgeHasNone(t *testing.T) {
	_, ok := connector.DialectFor(connector.JSBridge)
	assert.False(t, ok)
}
