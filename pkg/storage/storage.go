package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Storage is a small durable key/value store, the client's equivalent of
// browser local storage.
type Storage interface {
	// Get reports ok=false for a missing key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Driver string `yaml:"driver" envconfig:"BOOKNEST_STORAGE_DRIVER"`
	// DSN is a file path for sqlite3 and a connection string for pgx.
	DSN           string `yaml:"dsn" envconfig:"BOOKNEST_STORAGE_DSN"`
	RedisAddr     string `yaml:"redisAddr" envconfig:"BOOKNEST_REDIS_ADDR"`
	RedisPassword string `yaml:"redisPassword" envconfig:"BOOKNEST_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redisDB" envconfig:"BOOKNEST_REDIS_DB"`
	// KeyPrefix namespaces keys on shared backends.
	KeyPrefix string `yaml:"keyPrefix" envconfig:"BOOKNEST_STORAGE_PREFIX"`
}

var ErrUnknownDriver = errors.New("unknown storage driver")

func Open(ctx context.Context, cfg Config, log *zap.Logger) (Storage, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		path := cfg.DSN
		if path == "" {
			path = DefaultSQLitePath()
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, errors.Wrap(err, "create storage dir")
			}
		}
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
		return NewSQL(ctx, DriverSQLite, dsn, log)
	case DriverPostgres:
		return NewSQL(ctx, DriverPostgres, cfg.DSN, log)
	case DriverRedis:
		return NewRedis(ctx, cfg, log)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Wrap(ErrUnknownDriver, cfg.Driver)
	}
}

func DefaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "booknest", "session.db")
}
