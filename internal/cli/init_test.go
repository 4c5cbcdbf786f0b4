package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scentsurvey/internal/testutil"
)

// TestInitCommandCreatesFiles verifies init writes the config and catalogs.
func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".scent", "config.yml")

	code, out, errOut := run(t, "init", "--yes", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out)
	}
	for _, name := range []string{"config.yml", "questions.yml", "weights.yml", "normalization.yml"} {
		if _, err := os.Stat(filepath.Join(dir, ".scent", name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}

// TestInitCommandRefusesOverwrite verifies an existing config is kept.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := testutil.WriteFile(t, dir, "config.yml", "version: 1\n")

	code, out, errOut := run(t, "init", "--yes", "--config", configPath)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected overwrite warning, got %q", errOut)
	}
}

// TestInitCommandPromptDecline verifies answering no cancels.
func TestInitCommandPromptDecline(t *testing.T) {
	original := initInput
	t.Cleanup(func() { initInput = original })
	initInput = strings.NewReader("n\n")

	configPath := filepath.Join(t.TempDir(), "config.yml")
	code, _, errOut := run(t, "init", "--config", configPath)
	if code != ExitError || !strings.Contains(errOut, "Init cancelled.") {
		t.Fatalf("expected cancel, got %d %q", code, errOut)
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Fatalf("expected no config to be written")
	}
}

func writeTestFile(t *testing.T, path, body string) {
	t.Helper()
	testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), body)
}
