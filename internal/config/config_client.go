package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// defaultClientRequestTimeout bounds a single request when nothing else is
// configured.
const defaultClientRequestTimeout = 10 * time.Second

// ClientAdapter configures a client of the users API.
type ClientAdapter struct {
	// HTTPAddress is the server base address, with or without scheme
	// (e.g. "localhost:3000" or "http://localhost:3000").
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each request. Zero means no timeout.
	RequestTimeout time.Duration `env:"TIMEOUT"`
}

// GetClientAdapterConfig reads client settings from os.Args and the
// USERS_API_ environment variables. Flags win over env.
func GetClientAdapterConfig() (ClientAdapter, error) {
	return loadClientAdapterConfig(os.Args[1:])
}

func loadClientAdapterConfig(args []string) (ClientAdapter, error) {
	cfg, err := parseClientFlags(args)
	if err != nil {
		return ClientAdapter{}, err
	}

	envCfg := struct {
		Adapter ClientAdapter `envPrefix:"USERS_API_"`
	}{}
	if err = parseEnv(&envCfg); err != nil {
		return ClientAdapter{}, err
	}

	if err = mergo.Merge(&cfg, envCfg.Adapter); err != nil {
		return ClientAdapter{}, fmt.Errorf("error merging client configs: %w", err)
	}
	if err = mergo.Merge(&cfg, ClientAdapter{
		HTTPAddress:    fmt.Sprintf("localhost:%d", DefaultPort),
		RequestTimeout: defaultClientRequestTimeout,
	}); err != nil {
		return ClientAdapter{}, fmt.Errorf("error merging client configs: %w", err)
	}

	if cfg.RequestTimeout < 0 {
		return ClientAdapter{}, fmt.Errorf("%w: negative request timeout %s", ErrInvalidClientConfigs, cfg.RequestTimeout)
	}

	return cfg, nil
}

// parseClientFlags understands:
//
//	-a/-address server address, with or without scheme
//	-timeout per-request timeout (e.g., "3s")
func parseClientFlags(args []string) (ClientAdapter, error) {
	var cfg ClientAdapter

	fs := flag.NewFlagSet("users-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.HTTPAddress, "address", "", "Server address (alias)")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Per-request timeout")

	if err := fs.Parse(args); err != nil {
		return ClientAdapter{}, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
