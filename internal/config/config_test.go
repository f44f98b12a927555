package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peyote.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
server:
  host: "0.0.0.0"
  port: 9090
  read_timeout: 2s
cache:
  redis_url: "redis://localhost:6379/0"
  namespace: "shop"
  ttl: 1h
log:
  level: debug
  development: true
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 2*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, config.Server.WriteTimeout)
	assert.Equal(t, "0.0.0.0:9090", config.Server.Address())
	assert.True(t, config.Cache.Enabled())
	assert.Equal(t, "shop", config.Cache.Namespace)
	assert.Equal(t, time.Hour, config.Cache.TTL)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.Log.Development)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, config.Server.Host)
	assert.Equal(t, DefaultPort, config.Server.Port)
	assert.Equal(t, DefaultIdleTimeout, config.Server.IdleTimeout)
	assert.False(t, config.Cache.Enabled())
	assert.Equal(t, DefaultNamespace, config.Cache.Namespace)
	assert.Equal(t, DefaultCacheTTL, config.Cache.TTL)
	assert.Equal(t, DefaultLogLevel, config.Log.Level)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/peyote.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
server:
  - this is invalid
    yaml syntax
`)

	config, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PEYOTE_PORT", "7000")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")

	path := writeConfig(t, `version: "1.0"
server:
  port: 9090
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, config.Server.Port)
	assert.Equal(t, "redis://cache:6379/1", config.Cache.RedisURL)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("PEYOTE_PORT", "eighty")

	path := writeConfig(t, `version: "1.0"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PEYOTE_PORT")
}

func TestValidate(t *testing.T) {
	t.Run("rejects unsupported version", func(t *testing.T) {
		config := &Config{Version: "2.0"}
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version")
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		config := &Config{Version: "1.0", Server: ServerConfig{Port: 70000}}
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})

	t.Run("rejects negative timeouts", func(t *testing.T) {
		config := &Config{Version: "1.0", Server: ServerConfig{ReadTimeout: -time.Second}}
		assert.Error(t, config.Validate())
	})

	t.Run("rejects negative ttl", func(t *testing.T) {
		config := &Config{Version: "1.0", Cache: CacheConfig{TTL: -time.Minute}}
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache.ttl")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		config := &Config{Version: "1.0", Log: LogConfig{Level: "chatty"}}
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log.level")
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	assert.Equal(t, "127.0.0.1:8080", config.Server.Address())
	assert.False(t, config.Cache.Enabled())
}
