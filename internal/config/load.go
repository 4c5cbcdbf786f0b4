// Package config reads the .scent/config.yml project file.
package config

import (
	"fmt"
	"os"

	"scentsurvey/internal/catalog"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, BaseDir(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CatalogPaths resolves the configured catalog files against baseDir.
func (cfg Config) CatalogPaths(baseDir string) catalog.Paths {
	return catalog.Paths{
		Questions:     Resolve(baseDir, cfg.Catalog.Questions),
		Weights:       Resolve(baseDir, cfg.Catalog.Weights),
		Normalization: Resolve(baseDir, cfg.Catalog.Normalization),
	}
}
