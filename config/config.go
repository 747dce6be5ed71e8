// Package config provides configuration loading and persistence for
// bar-pulse. Settings live in a single JSON file; loading is forgiving
// (missing or malformed files yield defaults) and saving is atomic.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config represents persisted bar-pulse settings.
//
// The wire format is fixed:
//
//	{
//	  "modules": { "cpu": true, "mem": true, ... },
//	  "update_interval_sec": 1.0
//	}
type Config struct {
	// Modules maps metric keys to their enabled state.
	Modules map[string]bool `json:"modules"`

	// UpdateIntervalSec is the number of seconds between render ticks.
	UpdateIntervalSec float64 `json:"update_interval_sec"`
}

// DefaultConfig returns a Config with the stock module set and a one-second
// refresh interval.
func DefaultConfig() *Config {
	return &Config{
		Modules: map[string]bool{
			"cpu":     true,
			"mem":     true,
			"net":     true,
			"disk":    false,
			"battery": true,
			"gpu":     false,
		},
		UpdateIntervalSec: 1.0,
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/bar-pulse/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".config", "bar-pulse", "config.json")
}

// Load reads the config file at path and merges it over defaults: module
// keys the file omits keep their default, keys outside the known module set
// are dropped, and a non-positive interval falls back to the default. A
// missing, unreadable, or malformed file yields the defaults; loading never
// fails. If logger is nil, a no-op logger is used.
func Load(path string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("config: read failed, using defaults", "path", path, "error", err)
		}
		return cfg
	}

	var loaded Config
	if err := json.Unmarshal(raw, &loaded); err != nil {
		logger.Warn("config: parse failed, using defaults", "path", path, "error", err)
		return cfg
	}

	for key, v := range loaded.Modules {
		if _, known := cfg.Modules[key]; known {
			cfg.Modules[key] = v
		}
	}
	if loaded.UpdateIntervalSec > 0 {
		cfg.UpdateIntervalSec = loaded.UpdateIntervalSec
	}

	return cfg
}

// UpdateInterval returns the tick interval as a time.Duration, falling back
// to one second if the stored value is not positive.
func (c *Config) UpdateInterval() time.Duration {
	sec := c.UpdateIntervalSec
	if sec <= 0 {
		sec = 1.0
	}
	return time.Duration(sec * float64(time.Second))
}

// Save writes the config atomically: marshal to a temp file in the target
// directory, then rename over the destination. A failed write leaves any
// previously saved file intact.
func Save(path string, cfg *Config) error {
	encoded, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-config-*.json")
	if err != nil {
		return fmt.Errorf("config: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure path.
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("config: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("config: rename temp: %w", err)
	}

	success = true
	return nil
}
