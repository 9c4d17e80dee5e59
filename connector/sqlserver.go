//go:build !no_sqlserver

package connector

import (
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/microsoft/go-mssqldb"
)

func init() {
	registerProvider(SQLServer, newSQLServerConnector)
}

type sqlServerConnector struct {
	db *sqlx.DB
}

func newSQLServerConnector(ctx context.Context, url string) (Connector, error) {
	db, err := sqlx.Open("sqlserver", url)
	if err != nil {
		return nil, err
	}
	return &sqlServerConnector{db: db}, nil
}

func (c *sqlServerConnector) Name() string     { return "sqlserver" }
func (c *sqlServerConnector) Dialect() Dialect { return SQLServerDialect{} }
func (c *sqlServerConnector) DB() *sqlx.DB     { return c.db }
func (c *sqlServerConnector) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
