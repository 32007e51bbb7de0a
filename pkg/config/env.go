package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory, if present, and
// applies environment overrides to cfg. Variables already set in the
// process environment take precedence over .env entries.
//
//	PORT                  server port (":" is prepended when missing)
//	PAT_1, PAT_2, ...     GitHub tokens, read until the first gap
//	GITHUB_TOKEN          used when no PAT_n is set
//	GITHUB_API_URL        GraphQL endpoint
//	TOPLANGS_CACHE        cache backend
//	TOPLANGS_CACHE_DIR    file cache directory
//	TOPLANGS_CACHE_TTL    cache lifetime (Go duration)
//	REDIS_ADDR            redis address
//	REDIS_PASSWORD        redis password
func LoadEnv(cfg *Config) {
	_ = godotenv.Load()
	applyEnv(cfg)
}

func applyEnv(cfg *Config) {
	if port := env("PORT"); port != "" {
		if strings.HasPrefix(port, ":") {
			cfg.Server.Addr = port
		} else {
			cfg.Server.Addr = ":" + port
		}
	}

	if tokens := Tokens(); len(tokens) > 0 {
		cfg.GitHub.Tokens = tokens
	}
	if v := env("GITHUB_API_URL"); v != "" {
		cfg.GitHub.Endpoint = v
	}

	if v := env("TOPLANGS_CACHE"); v != "" {
		cfg.Cache.Backend = strings.ToLower(v)
	}
	if v := env("TOPLANGS_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = ExpandHome(v)
	}
	if v := env("TOPLANGS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v := env("REDIS_ADDR"); v != "" {
		cfg.Cache.Redis.Addr = v
	}
	if v := env("REDIS_PASSWORD"); v != "" {
		cfg.Cache.Redis.Password = v
	}
}

// Tokens returns the GitHub tokens from PAT_1, PAT_2, ... in order,
// stopping at the first unset variable. GITHUB_TOKEN is the fallback when
// PAT_1 is unset.
func Tokens() []string {
	var tokens []string
	for i := 1; ; i++ {
		v := env("PAT_" + strconv.Itoa(i))
		if v == "" {
			break
		}
		tokens = append(tokens, v)
	}
	if len(tokens) == 0 {
		if v := env("GITHUB_TOKEN"); v != "" {
			tokens = append(tokens, v)
		}
	}
	return tokens
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// String summarizes the configuration without secrets.
func (c Config) String() string {
	return fmt.Sprintf("addr=%s cache=%s ttl=%s tokens=%d", c.Server.Addr, c.Cache.Backend, c.Cache.TTL, len(c.GitHub.Tokens))
}
