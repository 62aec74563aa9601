// Package config holds bake settings loadable from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voxelbake/internal/mesher"
)

// Config are the knobs of a baking run.
type Config struct {
	AtlasSize    int  `yaml:"atlas_size"`
	BakeTangents bool `yaml:"bake_tangents"`
	MaxMaterials int  `yaml:"max_materials"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings: a 16x16 tile atlas, tangents
// baked, and the renderer's material bound.
func Default() *Config {
	return &Config{
		AtlasSize:    16,
		BakeTangents: true,
		MaxMaterials: mesher.MaxMaterials,
		Log:          LogConfig{Level: "info"},
	}
}

// Load returns defaults merged with the YAML file at path, when path is
// non-empty.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the bakers would panic on.
func (c *Config) Validate() error {
	if c.AtlasSize <= 0 {
		return fmt.Errorf("atlas_size must be positive, got %d", c.AtlasSize)
	}
	if c.MaxMaterials <= 0 {
		return fmt.Errorf("max_materials must be positive, got %d", c.MaxMaterials)
	}
	return nil
}
