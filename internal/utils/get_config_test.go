package utils

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

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "9000"
DB_HOST: "db.internal"
FEATURED_SLOT_COUNT: "4"
`)
	LoadConfigFrom(path)

	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, 4, GetConfigInt("FEATURED_SLOT_COUNT", 3))
}

func TestEnvironmentOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "9000"
JWT_SECRET: "from-yaml"
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	LoadConfigFrom(path)

	assert.Equal(t, "from-env", GetConfig("JWT_SECRET"))
	assert.Equal(t, "12345", GetConfig("TELEGRAM_CHAT_ID"))
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
}

func TestDefaultsApplyWhenUnset(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "UTC", GetConfig("APP_TIMEZONE"))
	assert.Equal(t, 3, GetConfigInt("FEATURED_SLOT_COUNT", 1))
	assert.Equal(t, 20, GetConfigInt("RESERVATION_MAX_GUESTS", 1))
	assert.Equal(t, "", GetConfig("SMTP_HOST"))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestGetConfigIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("RESERVATION_MAX_GUESTS", "lots")
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 12, GetConfigInt("RESERVATION_MAX_GUESTS", 12))
}
