package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadQuestionsYAML verifies YAML catalogs load and normalize properly.
func TestLoadQuestionsYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.yml", `version: 1
questions:
  - id: color
    question: "  Pick a color "
    type: single
    options:
      - " Red "
      - { text: "Blue", value: "#0000FF" }
  - id: likes
    question: "Pick up to two"
    type: multi
    limit: 2
    none_option: None
    options: ["Citrus", "Floral", "Woody", "None"]
`)
	spec, err := LoadQuestions(path)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	if len(spec.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(spec.Questions))
	}
	color := spec.Questions[0]
	if color.Prompt != "Pick a color" {
		t.Fatalf("expected trimmed prompt, got %q", color.Prompt)
	}
	if color.Options[0].Label != "Red" {
		t.Fatalf("expected trimmed label, got %q", color.Options[0].Label)
	}
	if color.Options[1].Value != "#0000FF" {
		t.Fatalf("expected option value to survive, got %+v", color.Options[1])
	}
	likes := spec.Questions[1]
	if !likes.IsNone("None") || likes.IsNone("Citrus") {
		t.Fatalf("unexpected none option handling: %+v", likes)
	}
}

// TestLoadQuestionsJSON verifies JSON catalogs accept string and object options.
func TestLoadQuestionsJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.json", `{
  "version": 1,
  "questions": [
    {"id": "sound", "question": "Which sound?", "type": "audio",
     "options": [{"text": "Cello", "src": "cello.mp3"}, "Birds"]}
  ]
}`)
	spec, err := LoadQuestions(path)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	q := spec.Questions[0]
	if q.Type != TypeSingle || q.Display != DisplayAudio {
		t.Fatalf("expected legacy audio tag to map to single/audio, got %s/%s", q.Type, q.Display)
	}
	if q.Options[0].Src != "cello.mp3" || q.Options[1].Label != "Birds" {
		t.Fatalf("unexpected options: %+v", q.Options)
	}
}

// TestLoadQuestionsUnknownType verifies unknown types fail at load time.
func TestLoadQuestionsUnknownType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.yml", `version: 1
questions:
  - id: slider
    question: "How much?"
    type: slider
`)
	_, err := LoadQuestions(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrUnknownQuestionType) {
		t.Fatalf("expected unknown question type, got %v", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %T", err)
	}
	if validationErr.Issues[0].Field != "questions[0].type" {
		t.Fatalf("expected type field, got %q", validationErr.Issues[0].Field)
	}
}

// TestLoadQuestionsRejectsUnknownFields verifies strict decoding.
func TestLoadQuestionsRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.yml", `version: 1
questions:
  - id: name
    question: "Name?"
    type: text
    colour: red
`)
	if _, err := LoadQuestions(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestLoadQuestionsRejectsMultipleDocuments verifies single-document input.
func TestLoadQuestionsRejectsMultipleDocuments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.yml", `version: 1
questions:
  - {id: a, question: "A?", type: text}
---
version: 1
`)
	if _, err := LoadQuestions(path); err == nil {
		t.Fatalf("expected multiple documents error")
	}
}

// TestLoadWeightsYAML verifies weight catalogs decode sparse vectors.
func TestLoadWeightsYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "weights.yml", `version: 1
categories: [Citrus, Floral, Woody]
questions:
  - question: "[Color] Pick a color"
    options:
      - { text: "Red-colored", weights: { Woody: 2, Citrus: 1 } }
`)
	spec, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("load weights: %v", err)
	}
	question, ok := spec.Question("[Color] Pick a color")
	if !ok {
		t.Fatalf("expected prompt to resolve")
	}
	option, ok := question.Option("Red-colored")
	if !ok {
		t.Fatalf("expected option to resolve")
	}
	if option.Weights["Woody"] != 2 || option.Weights["Floral"] != 0 {
		t.Fatalf("unexpected weights: %+v", option.Weights)
	}
}

// TestDefaultBundle verifies the embedded catalogs load and agree.
func TestDefaultBundle(t *testing.T) {
	bundle, err := Default()
	if err != nil {
		t.Fatalf("load default bundle: %v", err)
	}
	if len(bundle.Questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(bundle.Questions))
	}
	if len(bundle.Categories()) != 10 || bundle.Categories()[0] != "시트러스" {
		t.Fatalf("unexpected categories: %v", bundle.Categories())
	}
	like, index, ok := bundle.Question("scent_like")
	if !ok || index != 8 {
		t.Fatalf("expected scent_like at 8, got %d (%v)", index, ok)
	}
	if like.Limit != 2 || like.NoneOption != "모름(없음)" {
		t.Fatalf("unexpected scent_like definition: %+v", like)
	}
}

// TestLoadBundleOverridesSingleFile verifies empty paths keep embedded defaults.
func TestLoadBundleOverridesSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "normalization.yml", `version: 1
options:
  "빨강": "빨간색"
`)
	bundle, err := LoadBundle(Paths{Normalization: path})
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	if got := bundle.Normalizer.NormalizeOption("노랑"); got != "노랑" {
		t.Fatalf("expected override to replace default table, got %q", got)
	}
	if got := bundle.Normalizer.NormalizeOption("빨강"); got != "빨간색" {
		t.Fatalf("expected override mapping, got %q", got)
	}
	if len(bundle.Questions) != 12 {
		t.Fatalf("expected default questions, got %d", len(bundle.Questions))
	}
}
