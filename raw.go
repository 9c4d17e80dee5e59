package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/model"
)

// RawQuery carries a raw, connector-specific statement. Model is optional
// (not every raw statement targets one model); QueryType is a free-form
// hint as to what kind of query is being executed, carried through
// unchanged even though nothing in this core inspects it.
type RawQuery struct {
	Model     *model.Model
	Inputs    map[string]any
	QueryType *string
}

// ExecuteRaw runs a raw statement for its side effects; it never returns a
// projection.
type ExecuteRaw struct {
	RawQuery
}

func (*ExecuteRaw) isNode() {}

// Returns implements Returner: ExecuteRaw never returns a projection.
func (e *ExecuteRaw) Returns(model.FieldSelection) bool { return false }

func (e *ExecuteRaw) String() string {
	return fmt.Sprintf("ExecuteRaw: %v", e.Inputs)
}

func (e *ExecuteRaw) Graphviz() string {
	return fmt.Sprintf("ExecuteRaw: %v", e.Inputs)
}

// QueryRaw runs a raw statement and returns its rows verbatim to the
// caller, bypassing the Write-IR's own projection mechanism.
type QueryRaw struct {
	RawQuery
}

func (*QueryRaw) isNode() {}

// Returns implements Returner: QueryRaw never returns a Write-IR
// projection (its rows are returned out of band).
func (q *QueryRaw) Returns(model.FieldSelection) bool { return false }

func (q *QueryRaw) String() string {
	return fmt.Sprintf("QueryRaw: %v", q.Inputs)
}

func (q *QueryRaw) Graphviz() string {
	return fmt.Sprintf("QueryRaw: %v", q.Inputs)
}
