package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RELAY_ADDR points to a running relay, e.g. "localhost:8080".
	// The e2e suite is skipped when unset.
	RelayAddr string `envconfig:"RELAY_ADDR"`
	// TOKEN_SECRET must match the secret the target relay runs with.
	TokenSecret string `envconfig:"TOKEN_SECRET" default:"secret"`
	// E2E_ROOM allows pointing the suite at a scratch room.
	Room string `envconfig:"E2E_ROOM" default:"e2e-scratch"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
