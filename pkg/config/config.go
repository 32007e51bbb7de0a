// Package config loads toplangs settings from defaults, an optional TOML
// file, a .env file, and the environment, in that order of precedence
// (later sources win).
//
//	cfg, err := config.Load("")
//	c, err := cfg.Cache.Open()
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/matzehuels/toplangs/pkg/cache"
	"github.com/matzehuels/toplangs/pkg/errors"
)

const appName = "toplangs"

// Cache backends.
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Backends lists the accepted values of CacheConfig.Backend.
var Backends = []string{BackendNone, BackendFile, BackendMemory, BackendRedis}

// Config is the full application configuration.
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	GitHub GitHubConfig
	Card   CardConfig
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// CacheSeconds is the default card max-age when a request sets none.
	CacheSeconds int
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend    string
	Dir        string
	TTL        time.Duration
	MemorySize int
	Redis      RedisConfig
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// GitHubConfig configures the upstream API.
type GitHubConfig struct {
	Endpoint string
	Tokens   []string
}

// CardConfig holds defaults for cards whose request leaves them unset.
type CardConfig struct {
	Theme  string
	Locale string
	Layout string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":9000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			CacheSeconds: int(cache.TTLCard / time.Second),
		},
		Cache: CacheConfig{
			Backend:    BackendFile,
			Dir:        DefaultCacheDir(),
			TTL:        cache.TTLUsage,
			MemorySize: 1024,
			Redis:      RedisConfig{Addr: "localhost:6379", Prefix: appName + ":"},
		},
		Card: CardConfig{
			Theme:  "default",
			Locale: "en",
			Layout: "normal",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (or [Path]
// when path is empty), a .env file in the working directory, and the
// environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	if _, err := LoadFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	LoadEnv(&cfg)
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if !slices.Contains(Backends, c.Cache.Backend) {
		return fmt.Errorf("unknown cache backend %q (want one of %v)", c.Cache.Backend, Backends)
	}
	if c.Cache.Backend == BackendFile && c.Cache.Dir == "" {
		return fmt.Errorf("file cache needs a directory")
	}
	if c.Cache.MemorySize <= 0 {
		return fmt.Errorf("memory cache size must be positive, got %d", c.Cache.MemorySize)
	}
	if c.GitHub.Endpoint != "" {
		if err := errors.ValidateURL(c.GitHub.Endpoint); err != nil {
			return fmt.Errorf("github endpoint: %w", err)
		}
	}
	return nil
}

// Open creates the configured cache backend.
func (c CacheConfig) Open() (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendFile:
		fc, err := cache.NewFileCache(c.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendMemory:
		mc, err := cache.NewMemoryCache(c.MemorySize)
		if err != nil {
			return nil, err
		}
		return mc, nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:      c.Redis.Addr,
			Password:  c.Redis.Password,
			DB:        c.Redis.DB,
			KeyPrefix: c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}

// Dir returns the toplangs config directory, respecting XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// Path returns the full path to config.toml.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultCacheDir returns the file cache directory, respecting XDG_CACHE_HOME.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}
