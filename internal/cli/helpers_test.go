package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"scentsurvey/internal/config"
)

// initProject scaffolds a config in a temp dir and returns its path.
func initProject(t *testing.T) string {
	t.Helper()
	path := config.ConfigPath(t.TempDir())
	var out, errOut bytes.Buffer
	if code := Run([]string{"init", "--yes", "--config", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("init failed (%d): %s", code, errOut.String())
	}
	return path
}

// run executes the CLI and returns exit code, stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// resultID extracts the "id: ..." line printed after a saved result.
func resultID(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if id, ok := strings.CutPrefix(line, "id: "); ok {
			return strings.TrimSpace(id)
		}
	}
	t.Fatalf("no result id in output %q", output)
	return ""
}

const defaultAnswers = `answers:
  - { question_id: name, text: Jane }
  - { question_id: gender, option: 여 }
  - { question_id: age, option: 20대 }
  - { question_id: color, option: 빨강 }
  - { question_id: shape, option: 원형 }
  - { question_id: texture, option: 캐시미어 니트 }
  - { question_id: sound, option: 첼로 }
  - { question_id: impression, option: 다정하고 포근함 }
  - { question_id: scent_like, selected: [머스크, 마린] }
  - { question_id: scent_dislike, selected: [울렁거리는 꽃향] }
  - { question_id: moment, option: "데일리(출근/등교)" }
  - { question_id: painpoint, text: 약한 지속력 }
`

func answersPath(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yml")
	writeTestFile(t, path, body)
	return path
}
