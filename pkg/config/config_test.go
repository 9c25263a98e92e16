package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "attire.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "local", cfg.Inventory.Backend)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("INVENTORY_BACKEND", "document")
	t.Setenv("LOW_STOCK_THRESHOLD", "10")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Storage.RedisDB)
	assert.Equal(t, "document", cfg.Inventory.Backend)
	assert.Equal(t, 10, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("sin secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("driver desconocido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORAGE_DRIVER", "etcd")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("backend desconocido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("INVENTORY_BACKEND", "firestore")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "attire", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/attire?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
