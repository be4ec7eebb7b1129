// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once per process and cached for
// subsequent calls.
//
// The package loads .env files on first use and parses environment variables
// into struct fields via struct tags:
//
//	type ServerConfig struct {
//		Addr     string        `env:"SERVER_ADDR" envDefault:":8080"`
//		Shutdown time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Use MustLoad in startup paths where a broken configuration should stop the
// process.
package config
