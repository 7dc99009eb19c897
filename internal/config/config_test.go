package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := []byte("env: prod\nhttp:\n  port: 9090\n  read_timeout: 3s\n  write_timeout: 4s\npostgres:\n  url: postgres://u:p@localhost:5432/db\n  testing_url: postgres://u:p@localhost:5432/db_test\n  max_conns: 5\n  min_conns: 1\n  connect_timeout: 2s\n")
	require.NoError(t, os.WriteFile(cfgPath, content, 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Postgres.URL)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, 2*time.Second, cfg.Postgres.ConnectTimeout)
}

func TestLoad_FromEnvWithDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
	t.Setenv("TESTING_URL", "postgres://u:p@db:5432/app_test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(2), cfg.Postgres.MinConns)
	assert.Equal(t, 5*time.Second, cfg.Postgres.ConnectTimeout)
	assert.Equal(t, "postgres://u:p@db:5432/app_test", cfg.Postgres.TestingURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("postgres:\n  url: postgres://file\n"), 0o644))
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.Postgres.URL)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestMustLoad_PanicWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Panics(t, func() { MustLoad() })
}

func TestConnString(t *testing.T) {
	p := Postgres{URL: "postgres://prod", TestingURL: "postgres://test"}

	got, err := p.ConnString(false)
	require.NoError(t, err)
	assert.Equal(t, "postgres://prod", got)

	got, err = p.ConnString(true)
	require.NoError(t, err)
	assert.Equal(t, "postgres://test", got)

	p.TestingURL = ""
	_, err = p.ConnString(true)
	assert.ErrorIs(t, err, ErrTestingURLMissing)
}
