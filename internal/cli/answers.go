package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"scentsurvey/internal/survey"
)

// answerFile is the on-disk form consumed by "scent score".
type answerFile struct {
	Answers []survey.Record `json:"answers" yaml:"answers"`
}

// loadAnswerFile reads answers keyed by question id from YAML or JSON.
func loadAnswerFile(path string) ([]survey.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var file answerFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse answers: %w", err)
		}
		return file.Answers, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse answers: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return file.Answers, nil
}
