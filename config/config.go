package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/kafka"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/logger"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKNEST_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"BOOKNEST_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"BOOKNEST_HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"BOOKNEST_HTTP_WRITE"`
	// RateLimit is requests per second per client, zero disables limiting.
	RateLimit float64 `yaml:"rateLimit" envconfig:"BOOKNEST_HTTP_RATE_LIMIT"`
}

// API points at the remote library REST API.
type API struct {
	BaseURL string        `yaml:"baseURL" envconfig:"BOOKNEST_API_URL"`
	Timeout time.Duration `yaml:"timeout" envconfig:"BOOKNEST_API_TIMEOUT"`

	BreakerWindow   int           `yaml:"breakerWindow" envconfig:"BOOKNEST_API_BREAKER_WINDOW"`
	BreakerRatio    float64       `yaml:"breakerRatio" envconfig:"BOOKNEST_API_BREAKER_RATIO"`
	BreakerCooldown time.Duration `yaml:"breakerCooldown" envconfig:"BOOKNEST_API_BREAKER_COOLDOWN"`
}

type Search struct {
	Debounce time.Duration `yaml:"debounce" envconfig:"BOOKNEST_SEARCH_DEBOUNCE"`
}

type Config struct {
	Server  HTTPServer     `yaml:"server"`
	API     API            `yaml:"api"`
	Storage storage.Config `yaml:"storage"`
	Kafka   kafka.Config   `yaml:"kafka"`
	Search  Search         `yaml:"search"`
	Log     logger.Log     `yaml:"log"`
}

// Default is the configuration before any file or environment is applied.
func Default() Config {
	return Config{
		Server: HTTPServer{
			Host:         "127.0.0.1",
			Port:         "8090",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit:    20,
		},
		API: API{
			BaseURL:         "http://localhost:5000",
			Timeout:         30 * time.Second,
			BreakerWindow:   10,
			BreakerRatio:    0.6,
			BreakerCooldown: 10 * time.Second,
		},
		Storage: storage.Config{
			Driver:    storage.DriverSQLite,
			RedisAddr: "127.0.0.1:6379",
			KeyPrefix: "booknest:",
		},
		Search: Search{Debounce: 300 * time.Millisecond},
		Log:    logger.Log{LogLevel: zapcore.InfoLevel},
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from an optional YAML file and then the
// environment; environment values win.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		c, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = c
	})

	return cfg
}

// Load builds a fresh Config without caching it.
func Load(ops ...Option) (Config, error) {
	var o options
	config := Default()
	for _, op := range ops {
		op(&o)
	}
	if o.file != "" {
		if err := readYAML(o.file, &config); err != nil {
			return Config{}, err
		}
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, errors.Wrap(err, "process env")
	}
	for _, set := range o.overrides {
		set(&config)
	}
	if o.print != nil {
		printConfig(o.print, config)
	}
	return config, nil
}

func readYAML(path string, config *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func printConfig(w io.Writer, cfg Config) {
	if cfg.Storage.RedisPassword != "" {
		cfg.Storage.RedisPassword = "***"
	}
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Fprintln(w, string(jscfg))
}
