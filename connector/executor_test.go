package connector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arllen133/writeir/connector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRunsFnAndPropagatesError(t *testing.T) {
	exec, err := connector.Load(context.Background(), connector.Datasource{ActiveProvider: "sqlite"}, 0, "file::memory:")
	require.NoError(t, err)

	boom := errors.New("boom")
	called := false
	gotErr := exec.Execute(context.Background(), "create", func(ctx context.Context) error {
		called = true
		return boom
	})

	assert.True(t, called)
	assert.ErrorIs(t, gotErr, boom)
}

func TestExecuteSucceedsWithNoError(t *testing.T) {
	exec, err := connector.Load(context.Background(), connector.Datasource{ActiveProvider: "sqlite"}, 0, "file::memory:")
	require.NoError(t, err)

	gotErr := exec.Execute(context.Background(), "create", func(ctx context.Context) error {
		return nil
	})
	assert.NoError(t, gotErr)
}

func TestForceTransactionsSurvivesIntoExecutor(t *testing.T) {
	exec, err := connector.Load(context.Background(), connector.Datasource{ActiveProvider: "postgresql"}, 0, "postgres://h/db?pgbouncer=true")
	require.NoError(t, err)
	assert.True(t, exec.ForceTransactions())
	assert.Equal(t, "postgresql", exec.Connector().Name())
}
