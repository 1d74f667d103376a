package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_DRIVER", "DATABASE_URL", "MONGO_URI", "MONGO_DATABASE",
		"AUTH_JWT_SECRET", "KVK_API_KEY", "NEXT_PUBLIC_KVK_API_KEY", "KVK_BASE_URL", "TZ_LOCATION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "https://api.kvk.nl", cfg.Kvk.BaseURL)
	assert.Equal(t, "Europe/Amsterdam", cfg.Dashboard.Location)
	assert.Equal(t, "Europe/Amsterdam", cfg.Location().String())
	assert.True(t, cfg.MetricsEnabled())
	assert.False(t, cfg.NotificationsEnabled())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9000
database:
  driver: postgres
  url: postgres://file
kvk:
  api_key: from-file
metrics:
  enabled: false
`)
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("NEXT_PUBLIC_KVK_API_KEY", "legacy")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "legacy", cfg.Kvk.APIKey)
	assert.False(t, cfg.MetricsEnabled())

	t.Setenv("KVK_API_KEY", "primary")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Kvk.APIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "server: [oops"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "database:\n  driver: cassandra\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "database:\n  driver: mongo\n"))
	assert.Error(t, err)

	t.Setenv("TZ_LOCATION", "Mars/Olympus")
	_, err = Load(writeConfig(t, ""))
	assert.Error(t, err)

	t.Setenv("TZ_LOCATION", "")
	t.Setenv("PORT", "eighty")
	_, err = Load(writeConfig(t, ""))
	assert.Error(t, err)
}
