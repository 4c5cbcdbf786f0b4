package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQuestionType marks a question whose type is outside the recognized set.
var ErrUnknownQuestionType = errors.New("unknown question type")

// Issue captures a validation problem in a catalog file.
type Issue struct {
	Field   string
	Message string
	Err     error
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Kind   string
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s catalog validation failed: %s", err.Kind, strings.Join(parts, "; "))
}

// Unwrap exposes the sentinel errors attached to issues.
func (err *ValidationError) Unwrap() []error {
	if err == nil {
		return nil
	}
	var errs []error
	for _, issue := range err.Issues {
		if issue.Err != nil {
			errs = append(errs, issue.Err)
		}
	}
	return errs
}

type issueCollector struct {
	kind   string
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) addErr(field string, err error) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: err.Error(), Err: err})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Kind: collector.kind, Issues: collector.issues}
}

func (collector *issueCollector) checkVersion(version int) {
	if version == 0 {
		collector.add("version", "is required")
	} else if version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", version))
	}
}

// legacyTypes maps the original front-end type tags onto canonical types.
var legacyTypes = map[string]struct {
	qtype   QuestionType
	display Display
}{
	"button":          {TypeSingle, DisplayButton},
	"visual-color":    {TypeSingle, DisplayColor},
	"visual-shape":    {TypeSingle, DisplayShape},
	"visual-image":    {TypeSingle, DisplayImage},
	"audio":           {TypeSingle, DisplayAudio},
	"button-with-etc": {TypeSingleOther, DisplayButton},
	"checkbox":        {TypeMulti, ""},
}

func canonicalType(question Question) (QuestionType, Display) {
	raw := strings.ToLower(strings.TrimSpace(string(question.Type)))
	if legacy, ok := legacyTypes[raw]; ok {
		display := question.Display
		if display == "" {
			display = legacy.display
		}
		return legacy.qtype, display
	}
	return QuestionType(raw), question.Display
}

// NormalizeQuestions trims whitespace, resolves legacy type tags and validates a question catalog.
func NormalizeQuestions(spec QuestionSpec) (QuestionSpec, error) {
	collector := &issueCollector{kind: "question"}
	collector.checkVersion(spec.Version)
	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = NormalizeText(question.ID)
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = NormalizeText(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Type, question.Display = canonicalType(question)
		if !question.Type.Known() {
			collector.addErr(prefix+".type", fmt.Errorf("%w %q", ErrUnknownQuestionType, question.Type))
			spec.Questions[i] = question
			continue
		}

		question.Options = normalizeOptions(question.Options)
		question.NoneOption = NormalizeText(question.NoneOption)
		validateQuestionOptions(collector, prefix, &question)
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return QuestionSpec{}, err
	}
	return spec, nil
}

func validateQuestionOptions(collector *issueCollector, prefix string, question *Question) {
	if question.Type.IsText() {
		if len(question.Options) > 0 {
			collector.add(prefix+".options", fmt.Sprintf("not allowed for %s questions", question.Type))
		}
		if question.Limit != 0 {
			collector.add(prefix+".limit", fmt.Sprintf("not allowed for %s questions", question.Type))
		}
		if question.NoneOption != "" {
			collector.add(prefix+".none_option", fmt.Sprintf("not allowed for %s questions", question.Type))
		}
		return
	}

	if len(question.Options) == 0 {
		collector.add(prefix+".options", "must include at least one entry")
	}
	seenLabels := map[string]struct{}{}
	for optionIndex, option := range question.Options {
		field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
		if option.Label == "" {
			collector.add(field, "is required")
			continue
		}
		if _, exists := seenLabels[option.Label]; exists {
			collector.add(field, fmt.Sprintf("duplicate option %q", option.Label))
			continue
		}
		seenLabels[option.Label] = struct{}{}
	}

	if question.Type != TypeMulti {
		if question.Limit != 0 {
			collector.add(prefix+".limit", "only allowed for multi questions")
		}
		if question.NoneOption != "" {
			collector.add(prefix+".none_option", "only allowed for multi questions")
		}
		return
	}
	if question.Limit < 0 {
		collector.add(prefix+".limit", "must be a positive integer")
	} else if question.Limit > len(question.Options) {
		collector.add(prefix+".limit", fmt.Sprintf("exceeds option count %d", len(question.Options)))
	}
	if question.NoneOption != "" {
		if _, ok := seenLabels[question.NoneOption]; !ok {
			collector.add(prefix+".none_option", fmt.Sprintf("unknown option %q", question.NoneOption))
		}
	}
}

// NormalizeWeights trims whitespace and validates a weight catalog against its category set.
func NormalizeWeights(spec WeightSpec) (WeightSpec, error) {
	collector := &issueCollector{kind: "weight"}
	collector.checkVersion(spec.Version)

	if len(spec.Categories) == 0 {
		collector.add("categories", "must include at least one entry")
	}
	seenCategories := map[Category]struct{}{}
	for i, category := range spec.Categories {
		category = Category(NormalizeText(string(category)))
		field := fmt.Sprintf("categories[%d]", i)
		if category == "" {
			collector.add(field, "is required")
		} else if _, exists := seenCategories[category]; exists {
			collector.add(field, fmt.Sprintf("duplicate category %q", category))
		} else {
			seenCategories[category] = struct{}{}
		}
		spec.Categories[i] = category
	}

	seenPrompts := map[string]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.Prompt = NormalizeText(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		} else if _, exists := seenPrompts[question.Prompt]; exists {
			collector.add(prefix+".question", fmt.Sprintf("duplicate prompt %q", question.Prompt))
		} else {
			seenPrompts[question.Prompt] = struct{}{}
		}

		seenLabels := map[string]struct{}{}
		for optionIndex, option := range question.Options {
			field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
			option.Label = NormalizeText(option.Label)
			if option.Label == "" {
				collector.add(field+".text", "is required")
			} else if _, exists := seenLabels[option.Label]; exists {
				collector.add(field+".text", fmt.Sprintf("duplicate option %q", option.Label))
			} else {
				seenLabels[option.Label] = struct{}{}
			}
			for category := range option.Weights {
				if _, ok := seenCategories[category]; !ok {
					collector.add(field+".weights", fmt.Sprintf("unknown category %q", category))
				}
			}
			question.Options[optionIndex] = option
		}
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return WeightSpec{}, err
	}
	return spec, nil
}

// NormalizeNormalization trims whitespace and validates a normalization map.
func NormalizeNormalization(spec NormalizationSpec) (NormalizationSpec, error) {
	collector := &issueCollector{kind: "normalization"}
	collector.checkVersion(spec.Version)
	spec.Prompts = normalizeTable(collector, "prompts", spec.Prompts)
	spec.Options = normalizeTable(collector, "options", spec.Options)
	if err := collector.result(); err != nil {
		return NormalizationSpec{}, err
	}
	return spec, nil
}

func normalizeTable(collector *issueCollector, field string, table map[string]string) map[string]string {
	if len(table) == 0 {
		return nil
	}
	out := make(map[string]string, len(table))
	for from, to := range table {
		from, to = NormalizeText(from), NormalizeText(to)
		if from == "" || to == "" {
			collector.add(field, "entries must not be blank")
			continue
		}
		if _, exists := out[from]; exists {
			collector.add(field, fmt.Sprintf("duplicate entry %q", from))
			continue
		}
		out[from] = to
	}
	return out
}

func normalizeOptions(options []Option) []Option {
	normalized := make([]Option, 0, len(options))
	for _, option := range options {
		option.Label = NormalizeText(option.Label)
		option.Value = NormalizeText(option.Value)
		option.Src = NormalizeText(option.Src)
		normalized = append(normalized, option)
	}
	return normalized
}
