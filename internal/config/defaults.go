package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress         = ":8080"
	DefaultTokenIssuer         = "mission-planner"
	DefaultTokenDuration       = time.Hour
	DefaultRequestTimeout      = 30 * time.Second
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultCORSMaxAge          = 3600
	DefaultHealthCheckInterval = 15 * time.Second
	DefaultLogLevel            = "info"
	DefaultAdapterAddress      = "localhost:8080"
	DefaultAdapterTimeout      = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DeleteMode:   DeleteModeSoft,
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Security: Security{
			CORSAllowedOrigins: []string{"*"},
			CORSMaxAge:         DefaultCORSMaxAge,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: DefaultHealthCheckInterval,
		},
	}
}
