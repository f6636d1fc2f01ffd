package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SitePath    string // page documents (.json/.yaml)
	CatalogPath string // feature/widget/decorator manifests (.hcl)

	LogFormat   string
	LogLevel    string
	InspectPort int
	// Strict makes Run fail when any scanned action remains without a
	// provider after resolution.
	Strict bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SitePath == "" {
		return nil, errors.New("SitePath is a required configuration field and cannot be empty")
	}
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
