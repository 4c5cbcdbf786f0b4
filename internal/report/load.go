package report

import (
	"encoding/json"
	"fmt"
	"os"

	"scentsurvey/internal/results"
)

// LoadResult reads a result exported as JSON.
func LoadResult(path string) (results.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return results.Result{}, err
	}
	var result results.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return results.Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}

// WriteResult exports a result as indented JSON.
func WriteResult(path string, result results.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
