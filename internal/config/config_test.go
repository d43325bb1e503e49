package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.H <= 0 {
		t.Error("h should be positive")
	}
	if cfg.XFinal <= cfg.X0 {
		t.Error("x_final should be greater than x0")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should be set")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")

	cfg := Default()
	cfg.K = -0.5
	cfg.H = 0.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.K != -0.5 {
		t.Errorf("expected k -0.5, got %f", loaded.K)
	}
	if loaded.H != 0.25 {
		t.Errorf("expected h 0.25, got %f", loaded.H)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("k: 2.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.K != 2.0 {
		t.Errorf("expected k 2.0, got %f", cfg.K)
	}
	if cfg.Y0 != DefaultY0 {
		t.Errorf("expected default y0, got %f", cfg.Y0)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("decay")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.K != -1.0 {
		t.Errorf("expected k -1.0, got %f", cfg.K)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Params().Validate(); err != nil {
			t.Errorf("preset %s is invalid: %v", name, err)
		}
	}
}
