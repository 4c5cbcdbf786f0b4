package config

import (
	"path/filepath"
	"strings"

	"scentsurvey/internal/scoring"
)

// Defaults applied by Normalize.
const (
	DefaultStoragePath = "results.duckdb"
	DefaultLogLevel    = "info"
	DefaultUIMode      = "auto"
)

// Default returns the config used when no file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.Catalog.Questions = strings.TrimSpace(cfg.Catalog.Questions)
	cfg.Catalog.Weights = strings.TrimSpace(cfg.Catalog.Weights)
	cfg.Catalog.Normalization = strings.TrimSpace(cfg.Catalog.Normalization)
	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath
	}
	cfg.Scoring.PreferenceQuestion = strings.TrimSpace(cfg.Scoring.PreferenceQuestion)
	if cfg.Scoring.PreferenceQuestion == "" {
		cfg.Scoring.PreferenceQuestion = scoring.DefaultPolicy().PreferenceQuestionID
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
}

// Policy returns the scoring policy the config describes.
func (cfg Config) Policy() scoring.Policy {
	policy := scoring.DefaultPolicy()
	if cfg.Scoring.PreferenceQuestion != "" {
		policy.PreferenceQuestionID = cfg.Scoring.PreferenceQuestion
	}
	if cfg.Scoring.PreferenceBonus != nil {
		policy.PreferenceBonus = *cfg.Scoring.PreferenceBonus
	}
	return policy
}

// Resolve makes a config-relative path absolute against baseDir.
func Resolve(baseDir, path string) string {
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
