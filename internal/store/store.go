// Package store persists string values under string keys.
package store

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownBackend = errors.New("unknown store backend")

type Store interface {
	// Get reports ok=false when key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Backend string

const (
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendYAML, BackendSQLite, BackendRedis, BackendMemory:
		return b, nil
	case "":
		return BackendYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}
