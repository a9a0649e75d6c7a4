package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level console client configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// LogLevel is the minimal level of the client log file.
	LogLevel string
}

// GetClientConfig builds and validates the console client configuration.
//
// Defaults are overridden by ADAPTER_* environment variables, then by the
// -a and -timeout flags.
func GetClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().withDefaults().withEnv()

	flagsCfg, err := parseClientFlags(newFlagSet(), args)
	if err != nil {
		b.err = errors.Join(b.err, err)
	} else {
		b.configs = append(b.configs, flagsCfg)
	}

	cfg, err := b.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}

func parseClientFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var address string
	var timeout time.Duration
	var logLevel string

	fs.StringVar(&address, "a", "", "API address host:port")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
		},
	}, nil
}
