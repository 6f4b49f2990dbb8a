package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_FACETS_TTL", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 10*time.Minute, cfg.Redis.FacetsTTL)
	assert.Equal(t, 12, cfg.Catalog.DefaultLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CATALOG_DEFAULT_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 12, cfg.Catalog.DefaultLimit)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.MinIO.Endpoint = ""
	cfg.Catalog.DefaultLimit = 0

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Equal(t, 12, cfg.Catalog.DefaultLimit)

	cfg.Database.Host = ""
	_, err = cfg.Validate()
	assert.Error(t, err)
}
