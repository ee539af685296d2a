package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with values from FACTURADASH_* environment
// variables. Variables that are not set leave the current value in place.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(err)
	}
}
