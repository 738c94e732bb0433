package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Balls != 5 {
		t.Errorf("expected 5 balls, got %d", cfg.Balls)
	}
	if cfg.Damping != 1.0 {
		t.Errorf("expected lossless default, got damping %g", cfg.Damping)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one ball", func(c *Config) { c.Balls = 1 }},
		{"zero radius", func(c *Config) { c.Radius = 0 }},
		{"negative mass", func(c *Config) { c.Mass = -1 }},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }},
		{"zero rod", func(c *Config) { c.RodLength = 0 }},
		{"zero damping", func(c *Config) { c.Damping = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.1 }},
		{"negative angle", func(c *Config) { c.InitialAngle = -0.1 }},
		{"angle above pi/2", func(c *Config) { c.InitialAngle = math.Pi }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestPhysics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Balls = 7
	cfg.Gravity = 9.81

	phys := cfg.Physics()
	if phys.Balls != 7 {
		t.Errorf("balls = %d, want 7", phys.Balls)
	}
	if phys.Gravity != 9.81 {
		t.Errorf("gravity = %g, want 9.81", phys.Gravity)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cradle.yaml")

	cfg := DefaultConfig()
	cfg.Balls = 8
	cfg.Damping = 0.995

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Balls != 8 || loaded.Damping != 0.995 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic preset invalid: %v", err)
	}

	cfg.Balls = 99
	if Presets["classic"].Balls == 99 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
