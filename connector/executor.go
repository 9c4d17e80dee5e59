package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/arllen133/writeir"
)

type txContextKey struct{}

// TxFromContext returns the *sqlx.Tx the interpreting executor opened for
// the current operation under ForceTransactions, if any. A connector body
// driving a statement inside Execute's fn should prefer this transaction
// over its own pooled connection so that session-scoped state (prepared
// statements, `SET` variables) stays valid under pgbouncer transaction
// pooling.
func TxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx, ok
}

// QueryExecutor is what Load produces: a connector wrapped with the
// transaction policy its dialect requires and instrumented for
// observability. It is safe for concurrent use by many request handlers;
// its connection pool is the only shared mutable state, and it is owned
// exclusively by the executor.
type QueryExecutor interface {
	// Connector returns the underlying connector this executor wraps.
	Connector() Connector

	// ForceTransactions reports whether every logical operation, even a
	// single statement, must run inside an explicit transaction. Set when
	// a PostgreSQL-family datasource (postgresql, postgres, cockroachdb) is
	// routed through pgbouncer in transaction pooling mode, which forbids
	// session-level state.
	ForceTransactions() bool

	// Execute runs op against the underlying connector under this
	// executor's transaction policy, recording logs/traces/metrics around
	// it.
	Execute(ctx context.Context, op string, fn func(ctx context.Context) error) error

	// NativeUpsertSQL renders n's INSERT ... ON CONFLICT/ON DUPLICATE KEY
	// skeleton for this executor's dialect, ready to hand to the
	// underlying connector body for execution.
	NativeUpsertSQL(n *writeir.NativeUpsert) (string, []any, error)

	// Ping verifies the underlying connector is reachable.
	Ping(ctx context.Context) error
}

type interpretingExecutor struct {
	conn              Connector
	forceTransactions bool
	obs               *ObservabilityConfig
}

func newInterpretingExecutor(conn Connector, forceTransactions bool, opts ...ExecutorOption) *interpretingExecutor {
	e := &interpretingExecutor{
		conn:              conn,
		forceTransactions: forceTransactions,
		obs:               defaultObservabilityConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *interpretingExecutor) Connector() Connector    { return e.conn }
func (e *interpretingExecutor) ForceTransactions() bool { return e.forceTransactions }

func (e *interpretingExecutor) Ping(ctx context.Context) error {
	return e.conn.Ping(ctx)
}

// NativeUpsertSQL implements QueryExecutor, rendering n against this
// executor's connector's dialect.
func (e *interpretingExecutor) NativeUpsertSQL(n *writeir.NativeUpsert) (string, []any, error) {
	return BuildNativeUpsertSQL(e.conn.Dialect(), n)
}

// Execute wraps fn with a trace span, structured log and metric
// recording for one dispatched write operation. When ForceTransactions is
// set and the underlying connector is SQL-backed, fn additionally runs
// inside an explicit transaction, committed on success and rolled back on
// error or panic, opened once per dispatched operation.
func (e *interpretingExecutor) Execute(ctx context.Context, op string, fn func(ctx context.Context) error) (err error) {
	spanName := fmt.Sprintf("writeir.connector.%s", op)
	ctx, span := e.startSpan(ctx, spanName)
	defer span.End()

	start := time.Now()
	if e.forceTransactions {
		err = e.executeInTransaction(ctx, fn)
	} else {
		err = fn(ctx)
	}
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("db.system", e.conn.Name()))

	e.logOperation(ctx, op, duration, err)
	e.recordMetrics(ctx, op, duration, err)

	return err
}

// executeInTransaction opens a *sqlx.Tx around fn when the connector is
// SQL-backed; a connector with no explicit transaction support (Mongo,
// the JS bridge) simply runs fn directly — ForceTransactions is a
// PostgreSQL/pgbouncer-only concern (spec.md §4.2 step 4) and never
// applies to those providers anyway.
func (e *interpretingExecutor) executeInTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	sqlConn, ok := e.conn.(SQLConnector)
	if !ok {
		return fn(ctx)
	}

	tx, err := sqlConn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = fn(context.WithValue(ctx, txContextKey{}, tx))
	if err != nil {
		return err
	}

	return tx.Commit()
}
