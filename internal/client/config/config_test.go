package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "librivault.db", cfg.DatabaseFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "https://lib.example.com/api", "-t", "5", "-l", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "https://lib.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "librivault.db", cfg.DatabaseFile)
}

func TestLoadConfigJsonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	data, err := json.Marshal(map[string]any{
		"api_base_url":    "http://json.example/api",
		"request_timeout": "3s",
		"database_file":   "/tmp/json.db",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "http://json.example/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/json.db", cfg.DatabaseFile)
	// untouched by the file
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFlagBeatsJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"http://json.example/api"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "http://flag.example/api")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example/api", cfg.APIBaseURL)
}

func TestLoadConfigEnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("LIBRIVAULT_API_URL", "http://env.example/api")
	t.Setenv("LIBRIVAULT_REQUEST_TIMEOUT", "7s")

	cfg := LoadConfig()

	assert.Equal(t, "http://env.example/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigEnvBadTimeoutIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("LIBRIVAULT_REQUEST_TIMEOUT", "whenever")

	cfg := LoadConfig()
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
