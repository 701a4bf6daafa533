package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend-url API base URL, e.g. http://localhost:8000/api
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-session-file path of the persisted session token file
//	-download-dir directory for resource downloads and CSV exports
//	-keepalive-interval session keep-alive period (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendURL string
	var requestTimeout time.Duration
	var sessionFile string
	var downloadDir string
	var keepAliveInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendURL, "backend-url", "", "Backend API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionFile, "session-file", "", "Session token file path")
	flag.StringVar(&downloadDir, "download-dir", "", "Download directory")
	flag.DurationVar(&keepAliveInterval, "keepalive-interval", 0, "Session keep-alive interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BackendURL:     backendURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionFile: sessionFile,
			DownloadDir: downloadDir,
		},
		Workers: Workers{
			KeepAliveInterval: keepAliveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
