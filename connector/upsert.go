package connector

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/arllen133/writeir"
	"github.com/arllen133/writeir/model"
)

// BuildNativeUpsertSQL renders the INSERT ... ON CONFLICT / ON DUPLICATE
// KEY skeleton for a NativeUpsert node, using squirrel's dialect-aware
// placeholder formatting and the dialect's own conflict-clause suffix.
// The statement is built with squirrel's
// Insert().Columns().Values().Suffix().PlaceholderFormat().ToSql() chain
// from a Write-IR NativeUpsert node's Create/Update WriteArgs. Actually executing the
// rendered statement against a live connection is the out-of-scope
// connector body's job (spec.md §1); this is as far as the dispatch
// layer goes toward producing one.
func BuildNativeUpsertSQL(dialect Dialect, n *writeir.NativeUpsert) (string, []any, error) {
	if dialect == nil {
		return "", nil, fmt.Errorf("connector: native upsert has no SQL dialect to render against")
	}

	cols := make([]string, 0, n.Create.Len())
	vals := make([]any, 0, n.Create.Len())
	n.Create.Range(func(dbName string, v model.WriteArgsValue) bool {
		cols = append(cols, dbName)
		vals = append(vals, v.Value)
		return true
	})

	primaryIdentifier := n.Model.PrimaryIdentifier()
	conflictCols := make([]string, 0, len(primaryIdentifier))
	for _, f := range primaryIdentifier {
		conflictCols = append(conflictCols, f.DBName)
	}

	updateCols := make([]string, 0, n.Update.Len())
	n.Update.Range(func(dbName string, _ model.WriteArgsValue) bool {
		updateCols = append(updateCols, dbName)
		return true
	})

	builder := sq.Insert(n.Model.Name()).
		Columns(cols...).
		Values(vals...).
		Suffix(dialect.UpsertClause(conflictCols, updateCols)).
		PlaceholderFormat(dialect.PlaceholderFormat())

	return builder.ToSql()
}
