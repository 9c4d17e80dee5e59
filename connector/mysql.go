//go:build !no_mysql

package connector

import (
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
)

func init() {
	registerProvider(MySQL, newMySQLConnector)
}

type mysqlConnector struct {
	db *sqlx.DB
}

func newMySQLConnector(ctx context.Context, url string) (Connector, error) {
	db, err := sqlx.Open("mysql", url)
	if err != nil {
		return nil, err
	}
	return &mysqlConnector{db: db}, nil
}

func (c *mysqlConnector) Name() string     { return "mysql" }
func (c *mysqlConnector) Dialect() Dialect { return MySQLDialect{} }
func (c *mysqlConnector) DB() *sqlx.DB     { return c.db }
func (c *mysqlConnector) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
