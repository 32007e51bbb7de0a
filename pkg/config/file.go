package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	Server struct {
		Addr         *string `toml:"addr"`
		ReadTimeout  *string `toml:"read_timeout"`
		WriteTimeout *string `toml:"write_timeout"`
		CacheSeconds *int    `toml:"cache_seconds"`
	} `toml:"server"`
	Cache struct {
		Backend    *string `toml:"backend"`
		Dir        *string `toml:"dir"`
		TTL        *string `toml:"ttl"`
		MemorySize *int    `toml:"memory_size"`
		Redis      struct {
			Addr     *string `toml:"addr"`
			Password *string `toml:"password"`
			DB       *int    `toml:"db"`
			Prefix   *string `toml:"prefix"`
		} `toml:"redis"`
	} `toml:"cache"`
	GitHub struct {
		Endpoint *string  `toml:"endpoint"`
		Tokens   []string `toml:"tokens"`
	} `toml:"github"`
	Card struct {
		Theme  *string `toml:"theme"`
		Locale *string `toml:"locale"`
		Layout *string `toml:"layout"`
	} `toml:"card"`
}

// LoadFile reads the TOML file at path and merges its non-nil fields into
// cfg. Returns true if the file existed, false otherwise.
func LoadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	setString(&cfg.Server.Addr, fc.Server.Addr)
	if err := setDuration(&cfg.Server.ReadTimeout, fc.Server.ReadTimeout); err != nil {
		return true, err
	}
	if err := setDuration(&cfg.Server.WriteTimeout, fc.Server.WriteTimeout); err != nil {
		return true, err
	}
	setInt(&cfg.Server.CacheSeconds, fc.Server.CacheSeconds)

	setString(&cfg.Cache.Backend, fc.Cache.Backend)
	if fc.Cache.Dir != nil {
		cfg.Cache.Dir = ExpandHome(*fc.Cache.Dir)
	}
	if err := setDuration(&cfg.Cache.TTL, fc.Cache.TTL); err != nil {
		return true, err
	}
	setInt(&cfg.Cache.MemorySize, fc.Cache.MemorySize)
	setString(&cfg.Cache.Redis.Addr, fc.Cache.Redis.Addr)
	setString(&cfg.Cache.Redis.Password, fc.Cache.Redis.Password)
	setInt(&cfg.Cache.Redis.DB, fc.Cache.Redis.DB)
	setString(&cfg.Cache.Redis.Prefix, fc.Cache.Redis.Prefix)

	setString(&cfg.GitHub.Endpoint, fc.GitHub.Endpoint)
	if len(fc.GitHub.Tokens) > 0 {
		cfg.GitHub.Tokens = fc.GitHub.Tokens
	}

	setString(&cfg.Card.Theme, fc.Card.Theme)
	setString(&cfg.Card.Locale, fc.Card.Locale)
	setString(&cfg.Card.Layout, fc.Card.Layout)

	return true, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return home + path[1:]
}
