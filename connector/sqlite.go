//go:build !no_sqlite

package connector

import (
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

func init() {
	registerProvider(SQLite, newSQLiteConnector)
}

type sqliteConnector struct {
	db *sqlx.DB
}

func newSQLiteConnector(ctx context.Context, url string) (Connector, error) {
	db, err := sqlx.Open("sqlite3", url)
	if err != nil {
		return nil, err
	}
	return &sqliteConnector{db: db}, nil
}

func (c *sqliteConnector) Name() string     { return "sqlite" }
func (c *sqliteConnector) Dialect() Dialect { return SQLiteDialect{} }
func (c *sqliteConnector) DB() *sqlx.DB     { return c.db }
func (c *sqliteConnector) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
