package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default catalog file names, used both for the embedded data and for scaffolding.
const (
	QuestionsFileName     = "questions.yml"
	WeightsFileName       = "weights.yml"
	NormalizationFileName = "normalization.yml"
)

//go:embed data/*.yml
var defaultFiles embed.FS

// Paths locates the three catalog files. Empty entries fall back to the embedded defaults.
type Paths struct {
	Questions     string
	Weights       string
	Normalization string
}

// LoadQuestions reads, parses, and validates a question catalog file.
func LoadQuestions(path string) (QuestionSpec, error) {
	spec, err := readSpec[QuestionSpec](path)
	if err != nil {
		return QuestionSpec{}, fmt.Errorf("load questions: %w", err)
	}
	return NormalizeQuestions(spec)
}

// LoadWeights reads, parses, and validates a weight catalog file.
func LoadWeights(path string) (WeightSpec, error) {
	spec, err := readSpec[WeightSpec](path)
	if err != nil {
		return WeightSpec{}, fmt.Errorf("load weights: %w", err)
	}
	return NormalizeWeights(spec)
}

// LoadNormalization reads, parses, and validates a normalization map file.
func LoadNormalization(path string) (NormalizationSpec, error) {
	spec, err := readSpec[NormalizationSpec](path)
	if err != nil {
		return NormalizationSpec{}, fmt.Errorf("load normalization: %w", err)
	}
	return NormalizeNormalization(spec)
}

// LoadBundle loads all three catalogs, using embedded defaults for empty paths.
func LoadBundle(paths Paths) (Bundle, error) {
	questions, err := loadOrDefault(paths.Questions, QuestionsFileName, LoadQuestions, NormalizeQuestions)
	if err != nil {
		return Bundle{}, err
	}
	weights, err := loadOrDefault(paths.Weights, WeightsFileName, LoadWeights, NormalizeWeights)
	if err != nil {
		return Bundle{}, err
	}
	normalization, err := loadOrDefault(paths.Normalization, NormalizationFileName, LoadNormalization, NormalizeNormalization)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{
		Questions:  questions.Questions,
		Weights:    weights,
		Normalizer: NewNormalizer(normalization),
	}, nil
}

// Default returns the embedded perfume survey catalogs.
func Default() (Bundle, error) {
	return LoadBundle(Paths{})
}

// DefaultFile returns the raw bytes of an embedded catalog file.
func DefaultFile(name string) ([]byte, error) {
	return defaultFiles.ReadFile("data/" + name)
}

func loadOrDefault[T any](path, name string, load func(string) (T, error), normalize func(T) (T, error)) (T, error) {
	if strings.TrimSpace(path) != "" {
		return load(path)
	}
	var zero T
	data, err := DefaultFile(name)
	if err != nil {
		return zero, fmt.Errorf("read default %s: %w", name, err)
	}
	spec, err := parseSpec[T](data, name)
	if err != nil {
		return zero, fmt.Errorf("parse default %s: %w", name, err)
	}
	return normalize(spec)
}

func readSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", path, err)
	}
	return parseSpec[T](data, path)
}

func parseSpec[T any](data []byte, path string) (T, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON[T](data)
	}
	return parseYAML[T](data)
}

func parseJSON[T any](data []byte) (T, error) {
	var spec T
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return spec, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return spec, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return spec, fmt.Errorf("parse json: %w", err)
	}
	return spec, nil
}

func parseYAML[T any](data []byte) (T, error) {
	var spec T
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return spec, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return spec, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return spec, fmt.Errorf("parse yaml: %w", err)
	}
	return spec, nil
}
