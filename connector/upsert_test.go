package connector_test

import (
	"context"
	"testing"

	"github.com/arllen133/writeir"
	"github.com/arllen133/writeir/connector"
	"github.com/arllen133/writeir/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUserUpsert() *writeir.NativeUpsert {
	id := model.FieldDescriptor{Name: "id", DBName: "id"}
	email := model.FieldDescriptor{Name: "email", DBName: "email"}
	name := model.FieldDescriptor{Name: "name", DBName: "name"}
	m := model.NewModel("User", model.FieldSelection{id}, model.FieldSelection{id, email, name})

	create := model.NewWriteArgs()
	create.Insert(email, "a@acme.test")
	create.Insert(name, "A")

	update := model.NewWriteArgs()
	update.Insert(name, "A")

	return writeir.NewNativeUpsert("upsertUser", m, model.RecordFilter{}, create, update, m.PrimaryIdentifier(), nil)
}

func TestBuildNativeUpsertSQLPostgres(t *testing.T) {
	n := testUserUpsert()
	sql, args, err := connector.BuildNativeUpsertSQL(connector.PostgreSQLDialect{}, n)
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO User")
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name")
	assert.Contains(t, sql, "$1")
	assert.ElementsMatch(t, []any{"a@acme.test", "A"}, args)
}

func TestBuildNativeUpsertSQLMySQLUsesQuestionPlaceholders(t *testing.T) {
	n := testUserUpsert()
	sql, _, err := connector.BuildNativeUpsertSQL(connector.MySQLDialect{}, n)
	require.NoError(t, err)

	assert.Contains(t, sql, "?")
	assert.Contains(t, sql, "ON DUPLICATE KEY UPDATE name=VALUES(name)")
}

func TestBuildNativeUpsertSQLNilDialectFails(t *testing.T) {
	n := testUserUpsert()
	_, _, err := connector.BuildNativeUpsertSQL(nil, n)
	assert.Error(t, err)
}

func TestExecutorNativeUpsertSQLUsesConnectorDialect(t *testing.T) {
	exec, err := connector.Load(context.Background(), connector.Datasource{ActiveProvider: "postgresql"}, 0, "postgres://h/db")
	require.NoError(t, err)

	n := testUserUpsert()
	sql, _, err := exec.NativeUpsertSQL(n)
	require.NoError(t, err)
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name")
}
