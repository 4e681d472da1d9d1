package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration for the CLI.
type Config struct {
	GameDir  string `toml:"game_dir"`
	Output   string `toml:"output"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:   "hotfix.json",
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML config file on top of the defaults. A missing
// path is not an error; flags can supply everything.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = "hotfix.json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Validate checks that the config is runnable.
func (c Config) Validate() error {
	if c.GameDir == "" {
		return fmt.Errorf("game directory not set (use -dir or game_dir in the config)")
	}
	info, err := os.Stat(c.GameDir)
	if err != nil {
		return fmt.Errorf("game directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("game directory %s is not a directory", c.GameDir)
	}
	return nil
}
