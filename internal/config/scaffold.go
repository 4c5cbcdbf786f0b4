package config

import (
	"fmt"
	"os"
	"path/filepath"

	"scentsurvey/internal/catalog"
)

const defaultConfig = `version: 1
catalog:
  questions: questions.yml
  weights: weights.yml
  normalization: normalization.yml
storage:
  path: results.duckdb
scoring:
  preference_question: scent_like
  preference_bonus: 3
log:
  level: info
ui:
  mode: auto
`

// Scaffold writes a config file and copies the default catalogs next to it.
// Existing files are never overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	baseDir := filepath.Dir(configPath)
	targets := []string{configPath}
	for _, name := range []string{catalog.QuestionsFileName, catalog.WeightsFileName, catalog.NormalizationFileName} {
		targets = append(targets, filepath.Join(baseDir, name))
	}
	for _, target := range targets {
		if info, err := os.Stat(target); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", target)
			}
			return fmt.Errorf("file already exists at %q", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", target, err)
		}
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	for _, target := range targets[1:] {
		data, err := catalog.DefaultFile(filepath.Base(target))
		if err != nil {
			return fmt.Errorf("read default catalog: %w", err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	}
	return nil
}
