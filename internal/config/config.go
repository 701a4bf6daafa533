package config

import (
	"time"
)

// Defaults applied by [GetClientConfig] when no source sets a value.
const (
	// DefaultBackendURL matches a locally running backend deployment.
	DefaultBackendURL = "http://localhost:8000/api"

	// DefaultRequestTimeout bounds a single outbound request attempt.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultKeepAliveInterval is how often the background session job
	// pings the backend to detect token expiry.
	DefaultKeepAliveInterval = 5 * time.Minute
)

// StructuredConfig is the top-level configuration container, populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the backend HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds client-side persistence settings: the session token
	// file and the directory downloads are saved into.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound HTTP transport.
type Adapter struct {
	// BackendURL is the API base URL including the path prefix,
	// e.g. "http://localhost:8000/api".
	// Env: ADAPTER_BACKEND_URL
	BackendURL string `env:"BACKEND_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client aborts it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds client-side file locations.
type Storage struct {
	// SessionFile is the path of the persisted session token file.
	// Env: STORAGE_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`

	// DownloadDir is the directory resource downloads and CSV exports are
	// written into.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// KeepAliveInterval defines how often the session keep-alive job runs.
	// Env: WORKERS_KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (earlier sources win for fields
// they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load or the merged config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
