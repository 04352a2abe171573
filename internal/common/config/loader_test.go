// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "internship-allocator", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.Equal(t, 86400, cfg.Auth.SessionTTL)
	assert.Equal(t, 20, cfg.Allocation.TopPercentDefault)
	assert.Equal(t, 256, cfg.Notifications.QueueSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	require.NoError(t, validateConfig(&cfg))

	t.Run("email without from address", func(t *testing.T) {
		bad := cfg
		bad.Notifications.EmailEnabled = true
		bad.Notifications.FromAddress = ""
		assert.Error(t, validateConfig(&bad))
	})

	t.Run("top percent out of range", func(t *testing.T) {
		bad := cfg
		bad.Allocation.TopPercentDefault = 120
		assert.Error(t, validateConfig(&bad))
	})
}

func TestPostgresConfig(t *testing.T) {
	var pg PostgresConfig
	assert.False(t, pg.Enabled())

	pg = PostgresConfig{
		Host: "localhost", Port: 5432, User: "allocator",
		Password: "secret", Database: "allocator", SSLMode: "disable",
	}
	assert.True(t, pg.Enabled())
	assert.Equal(t,
		"host=localhost port=5432 user=allocator password=secret dbname=allocator sslmode=disable",
		pg.GetDSN())
}
