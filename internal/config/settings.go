package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"threadco/internal/store"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Settings struct {
	Store         string        `env:"THREADCO_STORE" envDefault:"yaml"`
	StorePath     string        `env:"THREADCO_STORE_PATH"`
	Catalog       string        `env:"THREADCO_CATALOG"`
	RedisAddr     string        `env:"THREADCO_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"THREADCO_REDIS_PASSWORD"`
	RedisDB       int           `env:"THREADCO_REDIS_DB" envDefault:"0"`
	RedisPrefix   string        `env:"THREADCO_REDIS_PREFIX" envDefault:"threadco:"`
	RedisWait     time.Duration `env:"THREADCO_REDIS_WAIT" envDefault:"10s"`
	LogLevel      string        `env:"THREADCO_LOG_LEVEL" envDefault:"warn"`
	LogFormat     string        `env:"THREADCO_LOG_FORMAT" envDefault:"console"`
}

// Load reads settings from the environment after merging dotenvPath, if it
// exists. Variables already set win over the file.
func Load(dotenvPath string) (Settings, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}

// StoreOptions resolves the backend and fills in the default path for it.
func (s Settings) StoreOptions() (store.Options, error) {
	backend, err := store.ParseBackend(s.Store)
	if err != nil {
		return store.Options{}, err
	}

	path := s.StorePath
	switch {
	case path != "":
		if path, err = ExpandPath(path); err != nil {
			return store.Options{}, err
		}
	case backend == store.BackendSQLite:
		path = DefaultSQLitePath()
	case backend == store.BackendYAML:
		path = DefaultStorePath()
	}

	return store.Options{
		Backend: backend,
		Path:    path,
		Redis: store.RedisOptions{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
			Prefix:   s.RedisPrefix,
			MaxWait:  s.RedisWait,
		},
	}, nil
}
