package config

import (
	"os"
	"path/filepath"
	"testing"

	"voxelbake/internal/mesher"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.AtlasSize != 16 {
		t.Errorf("default atlas size: got %d, want 16", cfg.AtlasSize)
	}
	if !cfg.BakeTangents {
		t.Errorf("tangent baking should default on")
	}
	if cfg.MaxMaterials != mesher.MaxMaterials {
		t.Errorf("material bound should default to the mesher's: got %d", cfg.MaxMaterials)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "atlas_size: 8\nbake_tangents: false\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AtlasSize != 8 {
		t.Errorf("atlas size not merged: %d", cfg.AtlasSize)
	}
	if cfg.BakeTangents {
		t.Errorf("bake_tangents not merged")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level not merged: %s", cfg.Log.Level)
	}
	// Untouched fields keep their defaults.
	if cfg.MaxMaterials != mesher.MaxMaterials {
		t.Errorf("max_materials default lost: %d", cfg.MaxMaterials)
	}
}

func TestLoadRejectsBadAtlasSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("atlas_size: 0\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("atlas_size 0 must be rejected")
	}
}

func TestLoadMissingPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should mean defaults: %v", err)
	}
	if cfg.AtlasSize != 16 {
		t.Errorf("unexpected atlas size: %d", cfg.AtlasSize)
	}
}
