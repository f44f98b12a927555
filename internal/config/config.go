package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied by Validate when a field is omitted.
const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 8080
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 5 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultNamespace    = "default"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultLogLevel     = "info"
)

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host         string        `yaml:"host,omitempty"`
	Port         int           `yaml:"port,omitempty"`
	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	IdleTimeout  time.Duration `yaml:"idle_timeout,omitempty"`
}

// Address returns host:port for net.Listen.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CacheConfig specifies the optional Redis result cache.
// The cache is disabled when RedisURL is empty.
type CacheConfig struct {
	RedisURL  string        `yaml:"redis_url,omitempty"`
	Namespace string        `yaml:"namespace,omitempty"` // Key prefix segment, lets several deployments share one Redis
	TTL       time.Duration `yaml:"ttl,omitempty"`
}

// Enabled reports whether a Redis URL was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// LogConfig specifies logger behaviour
type LogConfig struct {
	Level       string `yaml:"level,omitempty"` // debug, info, warn or error
	Development bool   `yaml:"development,omitempty"`
}

// Config represents the top-level peyote.yml configuration
type Config struct {
	Version string       `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Cache   CacheConfig  `yaml:"cache"`
	Log     LogConfig    `yaml:"log"`
}

// Default returns a validated configuration for running without a file.
func Default() *Config {
	cfg := &Config{Version: "1.0"}
	// Validate only fills defaults here and cannot fail
	_ = cfg.Validate()
	return cfg
}

// Validate applies defaults and performs strict validation on the configuration
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}

	if c.Cache.Namespace == "" {
		c.Cache.Namespace = DefaultNamespace
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %s (must be 'debug', 'info', 'warn', or 'error')", c.Log.Level)
	}

	return nil
}

// ApplyEnv overrides file values with PEYOTE_PORT and REDIS_URL when set.
func (c *Config) ApplyEnv() error {
	if port := os.Getenv("PEYOTE_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("failed to parse PEYOTE_PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}

	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Cache.RedisURL = url
	}

	return nil
}

// Load reads and validates peyote.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
