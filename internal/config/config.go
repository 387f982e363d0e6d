package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// DatabaseURL points at the platform's Postgres. The DATABASE_URL
	// environment variable overrides the config file.
	DatabaseURL string `koanf:"database_url"`

	// OperatorEmail identifies the acting admin user for role lookup.
	OperatorEmail string `koanf:"operator_email"`

	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Search profiles. Quick is the global search popup; Browser is the
	// admin database browser with larger caps and a calmer debounce.
	Search SearchConfig `koanf:"search"`
}

// SearchConfig holds both search-surface profiles.
type SearchConfig struct {
	Quick   ProfileConfig `koanf:"quick"`
	Browser ProfileConfig `koanf:"browser"`
}

// ProfileConfig defines one search-surface profile.
type ProfileConfig struct {
	DebounceMs   int            `koanf:"debounce_ms"`
	MinQueryLen  int            `koanf:"min_query_len"`
	Caps         map[string]int `koanf:"caps"` // category name -> result cap
	UpcomingOnly *bool          `koanf:"upcoming_only"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Environment wins over config files.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is not configured (set it in config.toml or DATABASE_URL)")
	}
	if email := os.Getenv("BOXOFFICE_OPERATOR"); email != "" {
		cfg.OperatorEmail = email
	}
	if cfg.OperatorEmail == "" {
		return nil, fmt.Errorf("operator_email is not configured (set it in config.toml or BOXOFFICE_OPERATOR)")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	// The two profiles intentionally differ: the quick popup reacts
	// fast with tight caps, the browser waits longer and shows more.
	if cfg.Search.Quick.DebounceMs <= 0 {
		cfg.Search.Quick.DebounceMs = 300
	}
	if cfg.Search.Browser.DebounceMs <= 0 {
		cfg.Search.Browser.DebounceMs = 1000
	}
	for _, p := range []*ProfileConfig{&cfg.Search.Quick, &cfg.Search.Browser} {
		if p.MinQueryLen <= 0 {
			p.MinQueryLen = 2
		}
	}
	if cfg.Search.Quick.UpcomingOnly == nil {
		upcoming := true
		cfg.Search.Quick.UpcomingOnly = &upcoming
	}
	if cfg.Search.Browser.UpcomingOnly == nil {
		all := false
		cfg.Search.Browser.UpcomingOnly = &all
	}
	if len(cfg.Search.Browser.Caps) == 0 && cfg.Search.Browser.DefaultCap() == 0 {
		// Browser profile shows more rows per category by default.
		cfg.Search.Browser.Caps = map[string]int{"default": 10}
	}
}

// DefaultCap returns the profile's fallback cap, 0 when unset.
func (p ProfileConfig) DefaultCap() int {
	return p.Caps["default"]
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/boxoffice/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "boxoffice", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}
