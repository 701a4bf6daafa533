package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BackendURL is the API base URL used by the client.
	BackendURL string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client-side file locations.
type ClientStorage struct {
	// SessionFile is the persisted session token file path.
	SessionFile string
	// DownloadDir is where downloads and exports are saved.
	DownloadDir string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// KeepAliveInterval defines how often the session keep-alive job runs.
	KeepAliveInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client file locations.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, applying defaults for anything no
// source provided.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BackendURL:     cfg.Adapter.BackendURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.SessionFile,
			DownloadDir: cfg.Storage.DownloadDir,
		},
		Workers: ClientWorkers{KeepAliveInterval: cfg.Workers.KeepAliveInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BackendURL == "" {
		cfg.Adapter.BackendURL = DefaultBackendURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.SessionFile == "" {
		cfg.Storage.SessionFile = defaultSessionFile()
	}
	if cfg.Storage.DownloadDir == "" {
		cfg.Storage.DownloadDir = defaultDownloadDir()
	}
	if cfg.Workers.KeepAliveInterval <= 0 {
		cfg.Workers.KeepAliveInterval = DefaultKeepAliveInterval
	}
}

// defaultSessionFile places the session under the user config directory,
// falling back to a dotfile in the working directory when the platform
// config dir cannot be resolved.
func defaultSessionFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".clubkit-session.json"
	}
	return filepath.Join(configDir, "clubkit", "session.json")
}

// defaultDownloadDir prefers the user's Downloads directory when it
// exists, else the working directory.
func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	downloads := filepath.Join(home, "Downloads")
	if info, statErr := os.Stat(downloads); statErr == nil && info.IsDir() {
		return downloads
	}
	return "."
}
