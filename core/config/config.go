package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when a nil pointer is passed to Load.
	ErrNilConfig = errors.New("config target cannot be nil")

	// ErrParseFailed wraps environment parsing failures.
	ErrParseFailed = errors.New("failed to parse environment variables")
)

var (
	cache  sync.Map // reflect.Type -> parsed struct value
	dotenv sync.Once
)

// Load populates cfg from environment variables. A .env file in the working
// directory is loaded once per process before the first parse; a missing
// file is not an error. Each configuration type is parsed once and cached,
// so repeated loads of the same type return identical values.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenv.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is Load that panics on failure, for process startup paths where
// a broken configuration should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
