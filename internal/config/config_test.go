package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
database:
  url: postgres://localhost/mesh
  max_conns: 12
distribution:
  max_attempts: 5
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres://localhost/mesh", cfg.Database.URL)
	assert.Equal(t, 12, cfg.Database.MaxConns)
	assert.Equal(t, 5, cfg.Distribution.MaxAttempts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  url: postgres://localhost/from_file
`), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://localhost/from_env")
	t.Setenv("DISTRIBUTION_MAX_ATTEMPTS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "postgres://localhost/from_env", cfg.Database.URL)
	assert.Equal(t, 7, cfg.Distribution.MaxAttempts)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mesh")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_BadEnvInteger(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mesh")
	t.Setenv("DATABASE_MAX_CONNS", "lots")

	_, err := Load("")
	assert.Error(t, err)
}
