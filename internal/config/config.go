package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rawbytedev/azspan/internal/logging"
)

// Config drives the spanctl harness.
type Config struct {
	LogLevel   string
	LogFormat  string
	IgnoreCase bool
	MemProfile string
}

type fileConfig struct {
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	IgnoreCase bool   `toml:"ignore_case"`
	MemProfile string `toml:"mem_profile"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: logging.FormatText,
	}
}

// Load reads a TOML file over Default(). Only keys present in the file
// replace defaults; unknown keys are rejected. An empty path returns
// Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("ignore_case") {
		cfg.IgnoreCase = raw.IgnoreCase
	}
	if meta.IsDefined("mem_profile") {
		cfg.MemProfile = strings.TrimSpace(raw.MemProfile)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if _, ok := logging.ParseFormat(cfg.LogFormat); !ok {
		return fmt.Errorf("invalid log_format %q", cfg.LogFormat)
	}
	return nil
}

// Logging converts the log settings into a logging.Config.
func (c Config) Logging() logging.Config {
	lc := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(c.LogLevel); ok {
		lc.Level = lvl
	}
	if f, ok := logging.ParseFormat(c.LogFormat); ok {
		lc.Format = f
	}
	return lc
}
