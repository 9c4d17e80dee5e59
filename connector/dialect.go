package connector

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Dialect abstracts database-specific SQL features this core is allowed
// to render: placeholder format and the one concrete SQL artifact this
// layer produces, the NativeUpsert conflict clause.
type Dialect interface {
	// Name returns the dialect's identifying name.
	Name() string

	// PlaceholderFormat returns the placeholder format squirrel should use
	// when rendering a native-upsert statement for this dialect.
	PlaceholderFormat() sq.PlaceholderFormat

	// UpsertClause renders the ON CONFLICT / ON DUPLICATE KEY suffix for a
	// native upsert, given the conflict-target columns and the columns to
	// update on conflict.
	UpsertClause(conflictCols []string, updateCols []string) string
}

// buildOnConflictUpsert renders the ON CONFLICT (...) DO UPDATE SET ... /
// DO NOTHING clause shared by PostgreSQL and SQLite.
func buildOnConflictUpsert(conflictCols, updateCols []string, excludedPrefix string) string {
	if len(conflictCols) == 0 {
		return ""
	}

	conflictTarget := strings.Join(conflictCols, ", ")

	if len(updateCols) == 0 {
		return fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", conflictTarget)
	}

	clause := fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET ", conflictTarget)
	updates := make([]string, len(updateCols))
	for i, col := range updateCols {
		updates[i] = fmt.Sprintf("%s=%s.%s", col, excludedPrefix, col)
	}

	return clause + strings.Join(updates, ", ")
}

// SQLiteDialect implements the SQLite dialect.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string                        { return "sqlite" }
func (SQLiteDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.Question }

// UpsertClause renders SQLite's ON CONFLICT clause (3.24+); excluded is
// lowercase, unlike PostgreSQL's EXCLUDED.
func (SQLiteDialect) UpsertClause(conflictCols []string, updateCols []string) string {
	return buildOnConflictUpsert(conflictCols, updateCols, "excluded")
}

// MySQLDialect implements the MySQL dialect.
type MySQLDialect struct{}

func (MySQLDialect) Name() string                        { return "mysql" }
func (MySQLDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.Question }

// UpsertClause renders MySQL's ON DUPLICATE KEY UPDATE clause. MySQL
// auto-detects the conflicting key, so conflictCols is unused; an empty
// updateCols can't express DO NOTHING and renders an empty string.
func (MySQLDialect) UpsertClause(conflictCols []string, updateCols []string) string {
	if len(updateCols) == 0 {
		return ""
	}

	clause := "ON DUPLICATE KEY UPDATE "
	updates := make([]string, len(updateCols))
	for i, col := range updateCols {
		updates[i] = fmt.Sprintf("%s=VALUES(%s)", col, col)
	}

	return clause + strings.Join(updates, ", ")
}

// PostgreSQLDialect implements the PostgreSQL dialect.
type PostgreSQLDialect struct{}

func (PostgreSQLDialect) Name() string                        { return "postgresql" }
func (PostgreSQLDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.Dollar }

// UpsertClause renders PostgreSQL's ON CONFLICT clause; EXCLUDED is
// uppercase.
func (PostgreSQLDialect) UpsertClause(conflictCols []string, updateCols []string) string {
	return buildOnConflictUpsert(conflictCols, updateCols, "EXCLUDED")
}

// CockroachDBDialect is identical to PostgreSQLDialect apart from its Name:
// cockroachdb routes to the same connector and wire dialect, per spec.md
// §9's open question
// ("preserve current behavior — identical wrapping").
type CockroachDBDialect struct {
	PostgreSQLDialect
}

func (CockroachDBDialect) Name() string { return "cockroachdb" }

// SQLServerDialect implements the SQL Server dialect.
type SQLServerDialect struct{}

func (SQLServerDialect) Name() string                        { return "sqlserver" }
func (SQLServerDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.AtP }

// UpsertClause renders SQL Server's MERGE-based upsert. SQL Server has no
// single-clause ON CONFLICT form; native upsert support is therefore
// limited to the MERGE statement's WHEN MATCHED suffix.
func (SQLServerDialect) UpsertClause(conflictCols []string, updateCols []string) string {
	if len(updateCols) == 0 {
		return "WHEN NOT MATCHED THEN INSERT"
	}

	sets := make([]string, len(updateCols))
	for i, col := range updateCols {
		sets[i] = fmt.Sprintf("target.%s = source.%s", col, col)
	}

	return fmt.Sprintf("WHEN MATCHED THEN UPDATE SET %s WHEN NOT MATCHED THEN INSERT", strings.Join(sets, ", "))
}

// MongoDialect is a no-op dialect for the document-store connector: Mongo
// has no placeholder format or SQL upsert clause, it expresses upserts
// natively through its own update-with-upsert-option API.
type MongoDialect struct{}

func (MongoDialect) Name() string                        { return "mongodb" }
func (MongoDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.Question }
func (MongoDialect) UpsertClause([]string, []string) string { return "" }

// DialectFor returns the Dialect for a given provider, and false if the
// provider is not a SQL/Mongo dialect family this core renders a dialect
// for (the JS-bridge token has none).
func DialectFor(p Provider) (Dialect, bool) {
	switch {
	case p == SQLite:
		return SQLiteDialect{}, true
	case p == MySQL:
		return MySQLDialect{}, true
	case p.isPostgres():
		return PostgreSQLDialect{}, true
	case p == CockroachDB:
		return CockroachDBDialect{}, true
	case p == SQLServer:
		return SQLServerDialect{}, true
	case p == MongoDB:
		return MongoDialect{}, true
	default:
		return nil, false
	}
}
