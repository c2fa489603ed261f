package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/config"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Durations are expressed in seconds.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Workers   WorkersConfig   `yaml:"workers"`
}

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type HTTPConfig struct {
	Port            int    `yaml:"port"`
	ReadTimeout     int    `yaml:"read_timeout"`
	WriteTimeout    int    `yaml:"write_timeout"`
	IdleTimeout     int    `yaml:"idle_timeout"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"`
	AllowedOrigins  string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver          string `yaml:"driver"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	SSLMode         string `yaml:"sslmode"`
	SQLitePath      string `yaml:"sqlite_path"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	StatsTTL int    `yaml:"stats_ttl"`
}

type RateLimitConfig struct {
	Enabled  bool `yaml:"enabled"`
	Requests int  `yaml:"requests"`
	Window   int  `yaml:"window"`
}

type WorkersConfig struct {
	StatsQueueSize         int `yaml:"stats_queue_size"`
	CountdownSweepInterval int `yaml:"countdown_sweep_interval"`
}

// Load reads .env (if any), then the embedded defaults expanded from the
// environment, then the optional YAML file named by CONFIG_PATH.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, using environment")
	}
	return LoadFrom(os.Getenv("CONFIG_PATH"), os.LookupEnv)
}

// LoadFrom is Load without the .env step. An empty path skips the overlay.
func LoadFrom(path string, lookup func(string) (string, bool)) (*Config, error) {
	opts := []config.YAMLOption{
		config.Source(bytes.NewReader(defaultsYAML)),
	}
	if path != "" {
		opts = append(opts, config.File(path))
	}
	opts = append(opts, config.Expand(lookup))

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "postgres", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.Database.Driver))
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.HTTP.Port))
	}
	if c.Database.Driver == "postgres" && (c.Database.Port <= 0 || c.Database.Port > 65535) {
		errs = append(errs, fmt.Errorf("invalid database port %d", c.Database.Port))
	}
	if c.Redis.Enabled && (c.Redis.Port <= 0 || c.Redis.Port > 65535) {
		errs = append(errs, fmt.Errorf("invalid redis port %d", c.Redis.Port))
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("rate limit requests and window must be positive"))
	}
	if c.Workers.CountdownSweepInterval <= 0 {
		errs = append(errs, errors.New("countdown sweep interval must be positive"))
	}

	return errors.Join(errs...)
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Origins splits the comma separated CORS list.
func (c HTTPConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return seconds(c.ConnMaxLifetime)
}

func (c RedisConfig) StatsTTLDuration() time.Duration {
	return seconds(c.StatsTTL)
}

func (c RateLimitConfig) WindowDuration() time.Duration {
	return seconds(c.Window)
}

func (c WorkersConfig) SweepIntervalDuration() time.Duration {
	return seconds(c.CountdownSweepInterval)
}

func (c HTTPConfig) Timeouts() (read, write, idle, shutdown time.Duration) {
	return seconds(c.ReadTimeout), seconds(c.WriteTimeout), seconds(c.IdleTimeout), seconds(c.ShutdownTimeout)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
