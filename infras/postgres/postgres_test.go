package postgres

import (
	"hotel/config"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotel-inventory"
	cfg.DB.Postgres.LockTimeoutMs = 3000

	raw := buildDSN(cfg, endpoint{
		username: "app",
		password: "p@ss:word",
		host:     "db.internal",
		port:     "5432",
		name:     "test_hotel",
		sslMode:  "disable",
	})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/test_hotel", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "hotel-inventory", parsed.Query().Get("application_name"))
	assert.Equal(t, "3000", parsed.Query().Get("lock_timeout"))
}

func TestBuildDSN_NoLockTimeout(t *testing.T) {
	parsed, err := url.Parse(buildDSN(&config.Config{}, endpoint{host: "localhost", port: "5432", name: "hotel"}))
	require.NoError(t, err)

	assert.False(t, parsed.Query().Has("lock_timeout"))
}

func TestDBName(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "hotel", dbName(cfg, "hotel"))

	cfg.DB.Postgres.Prefix = "test_"
	assert.Equal(t, "test_hotel", dbName(cfg, "hotel"))
}
