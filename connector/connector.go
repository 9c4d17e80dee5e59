package connector

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Connector is the factory contract every provider stub implements: given
// a parsed connection string it produces a handle this package's executor
// can drive. The connector bodies that actually run queries are out of
// scope; this contract only covers what the dispatcher needs to bind a
// datasource to a concrete backend.
type Connector interface {
	// Name returns the connector's identifying name, e.g. "sqlite".
	Name() string

	// Dialect returns the SQL dialect this connector renders native
	// upserts with.
	Dialect() Dialect

	// Ping verifies the connector can reach its backend.
	Ping(ctx context.Context) error
}

// SQLConnector is implemented by every connector backed by database/sql
// (sqlite, mysql, postgresql/cockroachdb, sqlserver). It is how the
// interpreting executor reaches the underlying *sqlx.DB to open an
// explicit transaction when ForceTransactions requires one; the
// document-store and JS-bridge connectors don't implement it and fall
// back to running fn directly.
type SQLConnector interface {
	Connector
	DB() *sqlx.DB
}

// FromSource constructs a Connector from a connection URL. Each provider
// stub registers one of these in the provider registry below, gated by
// its own build tag.
type FromSource func(ctx context.Context, url string) (Connector, error)

var providerFactories = map[Provider]FromSource{}

// registerProvider is called from each provider stub's init() function.
// A provider stub built out via its `no_<name>` build tag never calls
// this, so Load below reports it as unconfigured rather than panicking.
func registerProvider(p Provider, factory FromSource) {
	providerFactories[p] = factory
}
