package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Konsultn-Engineering/sqltpl/dialect"
	"gopkg.in/yaml.v3"
)

// Config controls how a query builder renders templates.
type Config struct {
	Dialect   string `json:"dialect" yaml:"dialect" toml:"dialect"`
	CacheSize int    `json:"cache_size" yaml:"cache_size" toml:"cache_size"`
	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dialect:   "mysql",
		CacheSize: 256,
		LogLevel:  "info",
	}
}

// Load reads a YAML or TOML file, chosen by extension, on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := dialect.ByName(c.Dialect); err != nil {
		return fmt.Errorf("invalid dialect: %s", c.Dialect)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("invalid cache size: %d", c.CacheSize)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values fall back to Info.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}
