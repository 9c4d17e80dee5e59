package connector

import (
	"context"
	"net/url"
	"strconv"
)

// knownProviders is the bit-exact token set this dispatcher recognizes,
// independent of which provider stubs were compiled in. A recognized but
// build-time-disabled token still fails with ConfigurationError, not a
// panic: the provider registry simply has no factory registered for it.
var knownProviders = map[Provider]bool{
	SQLite:      true,
	MySQL:       true,
	PostgreSQL:  true,
	Postgres:    true,
	CockroachDB: true,
	SQLServer:   true,
	MongoDB:     true,
	JSBridge:    true,
}

// Load binds a parsed datasource to a concrete connector and wraps it in
// an executor carrying the dialect's transaction policy. It is invoked
// exactly once, at service boot.
func Load(ctx context.Context, ds Datasource, features PreviewFeatures, connURL string) (QueryExecutor, error) {
	provider := Provider(ds.ActiveProvider)

	if !knownProviders[provider] {
		return nil, configErrorf("Unsupported connector type: %s", ds.ActiveProvider)
	}

	forceTransactions := false
	if provider.isPostgresFamily() {
		forced, err := pgbouncerForceTransactions(connURL)
		if err != nil {
			return nil, err
		}
		forceTransactions = forced
	}

	factory, ok := providerFactories[provider]
	if !ok {
		return nil, configErrorf("Unsupported connector type: %s", ds.ActiveProvider)
	}

	conn, err := factory(ctx, connURL)
	if err != nil {
		return nil, &ConnectorError{Provider: provider, Err: err}
	}

	return newInterpretingExecutor(conn, forceTransactions), nil
}

// pgbouncerForceTransactions parses the PostgreSQL-only `pgbouncer` query
// parameter off connURL. A malformed top-level URL is a fatal
// Configuration error; a missing or unparseable pgbouncer value is never
// an error, it is simply treated as false.
func pgbouncerForceTransactions(connURL string) (bool, error) {
	u, err := url.Parse(connURL)
	if err != nil {
		return false, configErrorf("invalid connection URL: %s", err)
	}

	raw := u.Query().Get("pgbouncer")
	if raw == "" {
		return false, nil
	}

	forced, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return forced, nil
}
