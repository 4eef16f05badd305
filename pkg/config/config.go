// Package config maps the environment the CI pipeline provides into one
// explicit struct handed to the commands at startup.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the whole runtime configuration. SecretToken is only required by
// the encrypt verb, which checks it itself rather than via a required tag.
type Config struct {
	// Operator secret the AES page key is derived from.
	SecretToken string `env:"SECRET_TOKEN"`

	// Bypass change detection and re-examine every manifest.
	ForceScanAll bool `env:"FORCE_ENCRYPT_ALL" envDefault:"false"`

	// Base URL of the unlock-code worker. Empty disables code sync.
	CloudflareWorkerURL string `env:"CLOUDFLARE_WORKER_URL"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
