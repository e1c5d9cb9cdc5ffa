package config

import "time"

const (
	defaultHTTPAddress     = "0.0.0.0:3000"
	defaultTokenIssuer     = "go-blog-api"
	defaultTokenDuration   = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 10
	defaultLogLevel        = "info"
	defaultDotEnvFile      = ".env"
)

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverMemory,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
