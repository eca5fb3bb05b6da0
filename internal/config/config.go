package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds gitwrap settings
type Config struct {
	// GitBinary is the git executable named at the start of every command line
	GitBinary string `yaml:"git_binary"`
	// Shell interprets command lines
	Shell string `yaml:"shell"`
	// WorkingDir is where commands that have no repository run (clone, ls-remote)
	WorkingDir string `yaml:"working_dir"`
	// CommandTimeout applies to commands whose context has no deadline. Zero disables it.
	CommandTimeout time.Duration `yaml:"command_timeout"`

	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		GitBinary:      "git",
		Shell:          "/bin/sh",
		WorkingDir:     ".",
		CommandTimeout: 5 * time.Minute,
		LogMaxSize:     1,
		LogMaxBackups:  2,
		LogMaxAge:      30,
	}
}

// Path returns the config file location: $GITWRAP_CONFIG, or
// ~/.config/gitwrap/config.yaml
func Path() string {
	if p := os.Getenv("GITWRAP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "gitwrap", "config.yaml")
}

// Load reads the config file at Path and applies environment overrides
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config file at path and applies environment overrides.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GITWRAP_GIT"); v != "" {
		c.GitBinary = v
	}
	if v := os.Getenv("GITWRAP_SHELL"); v != "" {
		c.Shell = v
	}
	if v := os.Getenv("GITWRAP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GITWRAP_TIMEOUT %q: %w", v, err)
		}
		c.CommandTimeout = d
	}
	if v := os.Getenv("GITWRAP_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if os.Getenv("DEBUG") != "" {
		c.Debug = true
	}

	// Rotation settings ignore values that do not parse
	if maxSize, err := strconv.Atoi(os.Getenv("GITWRAP_LOG_MAX_SIZE")); err == nil && maxSize > 0 {
		c.LogMaxSize = maxSize
	}
	if maxBackups, err := strconv.Atoi(os.Getenv("GITWRAP_LOG_MAX_BACKUPS")); err == nil && maxBackups >= 0 {
		c.LogMaxBackups = maxBackups
	}
	if maxAge, err := strconv.Atoi(os.Getenv("GITWRAP_LOG_MAX_AGE")); err == nil && maxAge > 0 {
		c.LogMaxAge = maxAge
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary must not be empty")
	}
	if c.Shell == "" {
		return fmt.Errorf("shell must not be empty")
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative, got %s", c.CommandTimeout)
	}
	if c.WorkingDir == "" {
		c.WorkingDir = "."
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
