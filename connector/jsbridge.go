//go:build !no_jsbridge

package connector

import "context"

func init() {
	registerProvider(JSBridge, newJSBridgeConnector)
}

// jsBridgeConnector has no SQL dialect of its own: it hands queries to an
// externally-driven JS worker (the "driverAdapters" connector) rather than
// speaking wire protocol directly.
type jsBridgeConnector struct{}

func newJSBridgeConnector(ctx context.Context, url string) (Connector, error) {
	return &jsBridgeConnector{}, nil
}

func (c *jsBridgeConnector) Name() string     { return "js" }
func (c *jsBridgeConnector) Dialect() Dialect { return nil }
func (c *jsBridgeConnector) Ping(ctx context.Context) error {
	return nil
}
