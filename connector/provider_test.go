package connector_test

import (
	"testing"

	"github.com/arllen133/writeir/connector"
	"github.com/stretchr/testify/assert"
)

func TestPreviewFeaturesHas(t *testing.T) {
	const relationJoins connector.PreviewFeatures = 1 << 0
	const fullTextIndex connector.PreviewFeatures = 1 << 1

	enabled := relationJoins
	assert.True(t, enabled.Has(relationJoins))
	assert.False(t, enabled.Has(fullTextIndex))
}

func TestPostgresAliasRecognizedIdentically(t *testing.T) {
	pg, ok := connector.DialectFor(connector.PostgreSQL)
	assert.True(t, ok)

	alias, ok := connector.DialectFor(connector.Postgres)
	assert.True(t, ok)

	assert.Equal(t, pg.Name(), alias.Name())
}
