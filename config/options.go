package config

import (
	"io"
	"time"

	"go.uber.org/zap/zapcore"
)

type options struct {
	file      string
	print     io.Writer
	overrides []func(*Config)
}

type Option func(*options)

// WithFile reads path as YAML before the environment is applied.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithPrint dumps the resolved config to w.
func WithPrint(w io.Writer) Option {
	return func(o *options) { o.print = w }
}

func override(f func(*Config)) Option {
	return func(o *options) { o.overrides = append(o.overrides, f) }
}

func WithLogLevel(level zapcore.Level) Option {
	return override(func(c *Config) { c.Log.LogLevel = level })
}

func WithAPIBaseURL(url string) Option {
	return override(func(c *Config) { c.API.BaseURL = url })
}

func WithStorageDriver(driver, dsn string) Option {
	return override(func(c *Config) {
		c.Storage.Driver = driver
		c.Storage.DSN = dsn
	})
}

func WithAddr(host, port string) Option {
	return override(func(c *Config) {
		if host != "" {
			c.Server.Host = host
		}
		if port != "" {
			c.Server.Port = port
		}
	})
}

func WithWriteTimeout(d time.Duration) Option {
	return override(func(c *Config) { c.Server.WriteTimeout = d })
}
