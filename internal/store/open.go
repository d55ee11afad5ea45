package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Options struct {
	Backend Backend
	// Path is the YAML file or SQLite database location.
	Path  string
	Redis RedisOptions
}

// Open returns the backend named by opts.Backend.
func Open(ctx context.Context, opts Options, log *zap.Logger) (Store, error) {
	log = log.With(zap.String("backend", string(opts.Backend)))

	var (
		s   Store
		err error
	)
	switch opts.Backend {
	case BackendYAML, "":
		s, err = NewYAMLStore(opts.Path)
	case BackendSQLite:
		s, err = OpenSQLite(ctx, opts.Path, log)
	case BackendRedis:
		s, err = OpenRedis(ctx, opts.Redis, log)
	case BackendMemory:
		s = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	log.Debug("store opened", zap.String("path", opts.Path))
	return s, nil
}
