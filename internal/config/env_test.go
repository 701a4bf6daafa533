package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("ADAPTER_BACKEND_URL", "http://club.example.org/api")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_SESSION_FILE", "/tmp/session.json")
	t.Setenv("STORAGE_DOWNLOAD_DIR", "/tmp/downloads")
	t.Setenv("WORKERS_KEEPALIVE_INTERVAL", "2m")
	t.Setenv("CONFIG", "/etc/clubkit/config.json")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://club.example.org/api", cfg.Adapter.BackendURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.SessionFile)
	assert.Equal(t, "/tmp/downloads", cfg.Storage.DownloadDir)
	assert.Equal(t, 2*time.Minute, cfg.Workers.KeepAliveInterval)
	assert.Equal(t, "/etc/clubkit/config.json", cfg.JSONFilePath)
}

func TestParseEnv_PartialConfig(t *testing.T) {
	t.Setenv("ADAPTER_BACKEND_URL", "http://localhost:9000/api")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api", cfg.Adapter.BackendURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.SessionFile)
	assert.Zero(t, cfg.Workers.KeepAliveInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}
