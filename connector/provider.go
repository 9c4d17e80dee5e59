// Package connector implements the connector-dispatch layer: binding a
// parsed datasource (provider token, connection URL, preview-feature set)
// to a concrete connector factory and wrapping it in an interpreting
// executor with per-dialect transaction policy.
package connector

// Provider identifies a connector family by its bit-exact provider token.
// Comparisons are case-sensitive.
type Provider string

const (
	SQLite      Provider = "sqlite"
	MySQL       Provider = "mysql"
	PostgreSQL  Provider = "postgresql"
	Postgres    Provider = "postgres" // alias of PostgreSQL, recognized identically
	CockroachDB Provider = "cockroachdb"
	SQLServer   Provider = "sqlserver"
	MongoDB     Provider = "mongodb"
	JSBridge    Provider = "js"
)

func (p Provider) isPostgres() bool {
	return p == PostgreSQL || p == Postgres
}

// isPostgresFamily reports whether p speaks the PostgreSQL wire protocol
// end to end, which is the condition the pgbouncer force-transactions
// check actually cares about: PostgreSQL itself, its "postgres" alias,
// and CockroachDB, which load_executor.rs routes through the identical
// `postgres(source, url, features)` loader function that computes
// force_transactions from the same `pgbouncer` query parameter. Dialect
// selection keeps using the narrower isPostgres(), since CockroachDB gets
// its own (identically-wrapped) Dialect value.
func (p Provider) isPostgresFamily() bool {
	return p.isPostgres() || p == CockroachDB
}

// PreviewFeatures is a bitset of opt-in preview features a datasource has
// enabled. Individual bits are not specified by this core; connectors
// that care about a particular feature test it with Has.
type PreviewFeatures uint64

// Has reports whether the given feature bit is set.
func (f PreviewFeatures) Has(bit PreviewFeatures) bool {
	return f&bit != 0
}

// Datasource describes the parsed schema datasource this dispatcher
// binds to a connector.
type Datasource struct {
	// ActiveProvider is the provider token as written in the schema, e.g.
	// "postgresql" or "cockroachdb".
	ActiveProvider string
}
