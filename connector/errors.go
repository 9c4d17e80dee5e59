package connector

import "fmt"

// ConfigurationError reports a problem with the datasource configuration
// itself: an unrecognized provider token, an unparseable connection URL,
// or a connector factory that refused the datasource outright.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("connector configuration: %s", e.Message)
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// ConnectorError wraps an error returned by an underlying connector
// factory unchanged, so callers can still inspect it with errors.As/Is.
type ConnectorError struct {
	Provider Provider
	Err      error
}

func (e *ConnectorError) Error() string {
	return fmt.Sprintf("connector %q: %s", e.Provider, e.Err)
}

func (e *ConnectorError) Unwrap() error { return e.Err }
