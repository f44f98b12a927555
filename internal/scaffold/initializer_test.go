package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/peyote/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Setenv("PEYOTE_PORT", "")
	t.Setenv("REDIS_URL", "")

	t.Run("writes a loadable config", func(t *testing.T) {
		dir := t.TempDir()

		path, err := Initialize(dir, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "peyote.yml"), path)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", cfg.Version)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.False(t, cfg.Cache.Enabled())
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "conf")
		_, err := Initialize(dir, false)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "peyote.yml"))
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := t.TempDir()
		existing := filepath.Join(dir, "peyote.yml")
		require.NoError(t, os.WriteFile(existing, []byte("custom"), 0644))

		_, err := Initialize(dir, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config already exists")

		content, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "custom", string(content))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		dir := t.TempDir()
		existing := filepath.Join(dir, "peyote.yml")
		require.NoError(t, os.WriteFile(existing, []byte("custom"), 0644))

		_, err := Initialize(dir, true)
		require.NoError(t, err)

		content, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Contains(t, string(content), `version: "1.0"`)
	})
}

func TestInitialize_IgnoresEnvironment(t *testing.T) {
	t.Setenv("PEYOTE_PORT", "eighty")
	t.Setenv("REDIS_URL", "")
	dir := t.TempDir()

	path, err := Initialize(dir, false)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = config.Load(path)
	assert.ErrorContains(t, err, "failed to parse PEYOTE_PORT")
}

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckExisting(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "peyote.yml"), []byte("x"), 0644))
	assert.Error(t, CheckExisting(dir))
}
