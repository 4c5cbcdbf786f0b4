package config

import (
	"fmt"
	"os"
	"strings"

	"scentsurvey/internal/catalog"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

var (
	logLevels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
	uiModes   = map[string]struct{}{"auto": {}, "live": {}, "plain": {}}
)

// Validate checks a normalized config and the catalog files it references.
func Validate(cfg *Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	checkFile(collector, "catalog.questions", baseDir, cfg.Catalog.Questions)
	checkFile(collector, "catalog.weights", baseDir, cfg.Catalog.Weights)
	checkFile(collector, "catalog.normalization", baseDir, cfg.Catalog.Normalization)

	if cfg.Scoring.PreferenceBonus != nil && *cfg.Scoring.PreferenceBonus < 0 {
		collector.add("scoring.preference_bonus", "must be >= 0")
	}
	if _, ok := logLevels[cfg.Log.Level]; !ok {
		collector.add("log.level", fmt.Sprintf("unsupported level %q", cfg.Log.Level))
	}
	if _, ok := uiModes[cfg.UI.Mode]; !ok {
		collector.add("ui.mode", fmt.Sprintf("unsupported mode %q", cfg.UI.Mode))
	}
	return collector.result()
}

// ValidateScoring checks the scoring section against the loaded questions.
// A disabled bonus is not checked.
func ValidateScoring(cfg Config, questions []catalog.Question) error {
	collector := &issueCollector{}
	policy := cfg.Policy()
	if policy.PreferenceBonus == 0 {
		return nil
	}
	found := false
	for _, question := range questions {
		if question.ID != policy.PreferenceQuestionID {
			continue
		}
		found = true
		if question.Type != catalog.TypeMulti {
			collector.add("scoring.preference_question", fmt.Sprintf("question %q is %s, expected multi", question.ID, question.Type))
		}
	}
	if !found {
		collector.add("scoring.preference_question", fmt.Sprintf("unknown question %q", policy.PreferenceQuestionID))
	}
	return collector.result()
}

func checkFile(collector *issueCollector, field, baseDir, path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(Resolve(baseDir, path))
	if err != nil {
		if os.IsNotExist(err) {
			collector.add(field, fmt.Sprintf("file %q does not exist", path))
			return
		}
		collector.add(field, fmt.Sprintf("stat %q: %v", path, err))
		return
	}
	if info.IsDir() {
		collector.add(field, fmt.Sprintf("%q is a directory", path))
	}
}
