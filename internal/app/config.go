package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAnimationDuration matches fyne's standard animation length.
const DefaultAnimationDuration = 300 * time.Millisecond

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool `yaml:"debug"`

	// StoragePath is the directory where reports are stored
	StoragePath string `yaml:"storage_path"`

	// LogDir overrides the platform log directory
	LogDir string `yaml:"log_dir"`

	// AnimationDuration is the expand/collapse animation length for cards.
	// Zero disables card animation.
	AnimationDuration time.Duration `yaml:"animation_duration"`

	// ListLimit caps how many reports the viewers load (0 = all)
	ListLimit int `yaml:"list_limit"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		StoragePath:       "", // Will use DefaultStoragePath() from storage package
		AnimationDuration: DefaultAnimationDuration,
		ListLimit:         50,
	}
}

// LoadConfigFile reads a YAML config file over the defaults.
// A missing file is not an error.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from WHOOPS_DEBUG, WHOOPS_STORAGE_PATH,
// WHOOPS_LOG_DIR and WHOOPS_ANIMATION_MS. Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if debugStr := os.Getenv("WHOOPS_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			c.Debug = debug
		}
	}

	if storagePath := os.Getenv("WHOOPS_STORAGE_PATH"); storagePath != "" {
		c.StoragePath = storagePath
	}

	if logDir := os.Getenv("WHOOPS_LOG_DIR"); logDir != "" {
		c.LogDir = logDir
	}

	if ms := os.Getenv("WHOOPS_ANIMATION_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			c.AnimationDuration = time.Duration(n) * time.Millisecond
		}
	}
}
