package config

// validate checks that the merged [StructuredConfig] satisfies basic
// invariants before the client views are derived from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.KeepAliveInterval < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BackendURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionFile == "" || cfg.Storage.DownloadDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.KeepAliveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
