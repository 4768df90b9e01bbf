// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "2")
	t.Setenv("SEED_DEMO_DATA", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2, cfg.Storage.MaxUploadSizeMB)
	assert.True(t, cfg.SeedDemo)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "production",
			Store:       StoreConfig{Driver: StoreDriverPostgres},
			Database:    DatabaseConfig{Password: "secret"},
			Storage:     StorageConfig{MaxUploadSizeMB: 10},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Store.Driver = "mongo"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Database.Password = ""
	assert.Error(t, cfg.Validate())

	cfg.Store.Driver = StoreDriverMemory
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Storage.MaxUploadSizeMB = 0
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "catalog",
		Password: "it's secret",
		Database: "variant_catalog",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		`host=db port=5432 user=catalog password='it\'s secret' dbname=variant_catalog sslmode=disable application_name=variant-catalog`,
		db.DSN())

	db.Password = ""
	assert.NotContains(t, db.DSN(), "password=")
}
