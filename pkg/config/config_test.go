package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/toplangs/pkg/cache"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GITHUB_TOKEN", "GITHUB_API_URL", "TOPLANGS_CACHE", "TOPLANGS_CACHE_DIR",
		"TOPLANGS_CACHE_TTL", "REDIS_ADDR", "REDIS_PASSWORD",
		"PAT_1", "PAT_2", "PAT_3", "PAT_4",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.CacheSeconds != 21600 {
		t.Errorf("CacheSeconds = %d", cfg.Server.CacheSeconds)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Cache.TTL != cache.TTLUsage {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := Default()
	exists, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("LoadFile should return false for missing file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
addr = ":8080"
read_timeout = "5s"
cache_seconds = 86400

[cache]
backend = "redis"
ttl = "2h"

[cache.redis]
addr = "redis:6379"
db = 2

[github]
tokens = ["a", "b"]

[card]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	exists, err := LoadFile(path, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}

	if cfg.Server.Addr != ":8080" || cfg.Server.ReadTimeout != 5*time.Second || cfg.Server.CacheSeconds != 86400 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("unset WriteTimeout should keep its default, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 || cfg.Cache.Redis.Prefix != "toplangs:" {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
	if strings.Join(cfg.GitHub.Tokens, ",") != "a,b" {
		t.Errorf("Tokens = %v", cfg.GitHub.Tokens)
	}
	if cfg.Card.Theme != "dark" || cfg.Card.Layout != "normal" {
		t.Errorf("Card = %+v", cfg.Card)
	}
}

func TestLoadFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[cache]\nttl = \"forever\"\n"), 0o644)

	cfg := Default()
	if _, err := LoadFile(path, &cfg); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("PAT_1", "one")
	t.Setenv("PAT_2", " two ")
	t.Setenv("PAT_4", "four")
	t.Setenv("GITHUB_TOKEN", "ignored")
	t.Setenv("TOPLANGS_CACHE", "Memory")
	t.Setenv("TOPLANGS_CACHE_TTL", "30m")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg := Default()
	applyEnv(&cfg)

	if cfg.Server.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if got := strings.Join(cfg.GitHub.Tokens, ","); got != "one,two" {
		t.Errorf("Tokens = %q, want one,two (stop at the first gap)", got)
	}
	if cfg.Cache.Backend != BackendMemory || cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.Redis.Addr != "cache:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"none", nil, ""},
		{"github token fallback", map[string]string{"GITHUB_TOKEN": "gh"}, "gh"},
		{"pats win", map[string]string{"PAT_1": "a", "GITHUB_TOKEN": "gh"}, "a"},
		{"ordered", map[string]string{"PAT_1": "a", "PAT_2": "b", "PAT_3": "c"}, "a,b,c"},
		{"gap", map[string]string{"PAT_2": "b"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := strings.Join(Tokens(), ","); got != tt.want {
				t.Errorf("Tokens() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[server]\naddr = \":7000\"\n[cache]\nbackend = \"none\"\n"), 0o644)
	t.Setenv("PORT", ":7100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7100" {
		t.Errorf("environment should override the file, Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Cache.Backend = "s3" }},
		{"file without dir", func(c *Config) { c.Cache.Dir = "" }},
		{"memory size", func(c *Config) { c.Cache.MemorySize = 0 }},
		{"endpoint scheme", func(c *Config) { c.GitHub.Endpoint = "ftp://api.github.com/graphql" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestCacheOpen(t *testing.T) {
	tests := []struct {
		backend string
		check   func(cache.Cache) bool
	}{
		{BackendNone, func(c cache.Cache) bool { _, ok := c.(*cache.NullCache); return ok }},
		{BackendFile, func(c cache.Cache) bool { _, ok := c.(*cache.FileCache); return ok }},
		{BackendMemory, func(c cache.Cache) bool { _, ok := c.(*cache.MemoryCache); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := Default().Cache
			cfg.Backend = tt.backend
			cfg.Dir = t.TempDir()
			c, err := cfg.Open()
			if err != nil {
				t.Fatal(err)
			}
			defer c.Close()
			if !tt.check(c) {
				t.Errorf("Open() = %T", c)
			}
		})
	}

	if _, err := (CacheConfig{Backend: "s3"}).Open(); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestDirs(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_CACHE_HOME", tmp)

	if got, want := Path(), filepath.Join(tmp, "toplangs", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got, want := DefaultCacheDir(), filepath.Join(tmp, "toplangs"); got != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/cache", filepath.Join(home, "cache")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
