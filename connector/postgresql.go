//go:build !no_postgresql

package connector

import (
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func init() {
	registerProvider(PostgreSQL, newPostgreSQLConnector)
	registerProvider(Postgres, newPostgreSQLConnector)
	registerProvider(CockroachDB, newCockroachDBConnector)
}

type postgresConnector struct {
	db      *sqlx.DB
	dialect Dialect
	name    string
}

func newPostgreSQLConnector(ctx context.Context, url string) (Connector, error) {
	db, err := sqlx.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	return &postgresConnector{db: db, dialect: PostgreSQLDialect{}, name: "postgresql"}, nil
}

// newCockroachDBConnector reuses the PostgreSQL wire connector verbatim:
// CockroachDB speaks the PostgreSQL wire protocol, and its dialect is
// PostgreSQLDialect wrapped under a different name.
func newCockroachDBConnector(ctx context.Context, url string) (Connector, error) {
	db, err := sqlx.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	return &postgresConnector{db: db, dialect: CockroachDBDialect{}, name: "cockroachdb"}, nil
}

func (c *postgresConnector) Name() string     { return c.name }
func (c *postgresConnector) Dialect() Dialect { return c.dialect }
func (c *postgresConnector) DB() *sqlx.DB     { return c.db }
func (c *postgresConnector) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
