package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	wantModules := map[string]bool{
		"cpu":     true,
		"mem":     true,
		"net":     true,
		"disk":    false,
		"battery": true,
		"gpu":     false,
	}
	for key, want := range wantModules {
		got, ok := cfg.Modules[key]
		if !ok {
			t.Errorf("default modules missing %q", key)
			continue
		}
		if got != want {
			t.Errorf("default modules[%q] = %v, want %v", key, got, want)
		}
	}

	if cfg.UpdateIntervalSec != 1.0 {
		t.Errorf("default interval = %v, want 1.0", cfg.UpdateIntervalSec)
	}
}

func TestLoadNonExistent(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.json"), nil)

	if !cfg.Modules["cpu"] {
		t.Error("missing file should yield defaults")
	}
	if cfg.UpdateIntervalSec != 1.0 {
		t.Errorf("interval = %v, want default 1.0", cfg.UpdateIntervalSec)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path, nil)
	if !cfg.Modules["mem"] {
		t.Error("malformed file should yield defaults")
	}
}

// TestLoadPartialModules verifies a file missing a module key keeps that
// key's default rather than dropping it.
func TestLoadPartialModules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"modules": {"cpu": false, "gpu": true}, "update_interval_sec": 2.5}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path, nil)

	if cfg.Modules["cpu"] {
		t.Error("cpu should be disabled as configured")
	}
	if !cfg.Modules["gpu"] {
		t.Error("gpu should be enabled as configured")
	}
	if cfg.Modules["disk"] {
		t.Error("disk should keep its default (false)")
	}
	if !cfg.Modules["battery"] {
		t.Error("battery should keep its default (true)")
	}
	if cfg.UpdateIntervalSec != 2.5 {
		t.Errorf("interval = %v, want 2.5", cfg.UpdateIntervalSec)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"modules": {"cpu": true, "teapot": true}, "update_interval_sec": 1.0, "theme": "dark"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path, nil)
	if _, ok := cfg.Modules["teapot"]; ok {
		t.Error("unknown module key leaked into the config")
	}
	if len(cfg.Modules) != 6 {
		t.Errorf("modules has %d keys, want 6", len(cfg.Modules))
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"modules": {}, "update_interval_sec": -3}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path, nil)
	if cfg.UpdateIntervalSec != 1.0 {
		t.Errorf("interval = %v, want default 1.0", cfg.UpdateIntervalSec)
	}
}

func TestUpdateInterval(t *testing.T) {
	tests := []struct {
		sec  float64
		want time.Duration
	}{
		{1.0, time.Second},
		{0.5, 500 * time.Millisecond},
		{0, time.Second},
		{-1, time.Second},
	}

	for _, tt := range tests {
		cfg := &Config{UpdateIntervalSec: tt.sec}
		if got := cfg.UpdateInterval(); got != tt.want {
			t.Errorf("UpdateInterval(%v) = %v, want %v", tt.sec, got, tt.want)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Modules["disk"] = true
	cfg.UpdateIntervalSec = 3.0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(path, nil)
	if !loaded.Modules["disk"] {
		t.Error("saved disk toggle did not round-trip")
	}
	if loaded.UpdateIntervalSec != 3.0 {
		t.Errorf("interval = %v, want 3.0", loaded.UpdateIntervalSec)
	}
}

// TestSaveAtomic verifies a save over an existing file replaces it wholesale
// and leaves no temp files behind.
func TestSaveAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Modules["gpu"] = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(raw) {
		t.Error("saved file is not valid JSON")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp leftovers)", len(entries))
	}
}
