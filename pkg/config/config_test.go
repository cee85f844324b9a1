package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "SEED_LOCK_ENABLED", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "", cfg.Database.Password)
	assert.Equal(t, 5, cfg.Database.PoolSize)
	assert.Empty(t, cfg.Database.Schema, "schema must only come from the command line")
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Lock.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Lock.TTL)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "tenant-seeder:runs", cfg.Events.Channel)
}

func TestLoad_DatabaseOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "seeder")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	db := cfg.Database.WithSchema("tenant_apollo")
	assert.Equal(t, "tenant_apollo", db.Schema)
	assert.Empty(t, cfg.Database.Schema, "WithSchema must not mutate the loaded config")

	dsn := db.MySQLDSN()
	assert.Contains(t, dsn, "seeder:s3cret@tcp(db.internal:3307)/tenant_apollo")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestLoad_PostgresDriverDefaultsPort(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	db := cfg.Database.WithSchema("tenant_apollo")
	assert.Contains(t, db.DSN(), "search_path=tenant_apollo")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresDSN_KeepsEmptyAndSpacedPasswords(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "password with spaces and quotes", password: `p@ss word'\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "db.internal",
				Port:     5432,
				User:     "seeder",
				Password: tt.password,
				Database: "practice",
				SSLMode:  "disable",
				Schema:   "tenant_apollo",
			}

			u, err := url.Parse(cfg.DSN())
			require.NoError(t, err)

			assert.Equal(t, "postgres", u.Scheme)
			assert.Equal(t, "db.internal:5432", u.Host)
			assert.Equal(t, "/practice", u.Path)
			assert.Equal(t, "seeder", u.User.Username())
			password, _ := u.User.Password()
			assert.Equal(t, tt.password, password)
			assert.Equal(t, "tenant_apollo", u.Query().Get("search_path"))
			assert.Equal(t, "disable", u.Query().Get("sslmode"))
		})
	}
}
