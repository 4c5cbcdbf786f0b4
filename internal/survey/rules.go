package survey

import (
	"fmt"
	"slices"

	"scentsurvey/internal/catalog"
)

// validateAnswer checks an answer against its question's type-specific constraints.
func validateAnswer(question catalog.Question, answer Answer) error {
	if !answer.Accepts(question.Type) {
		return fmt.Errorf("%s: %T does not fit a %s question: %w", question.ID, answer, question.Type, ErrInvalidAnswer)
	}
	switch typed := answer.(type) {
	case Choice:
		return checkOptionIndex(question, typed.Index)
	case ChoiceOrFreeform:
		if typed.IsFreeform {
			if typed.Index >= 0 {
				return fmt.Errorf("%s: option and freeform text both set: %w", question.ID, ErrInvalidAnswer)
			}
			return nil
		}
		if typed.Text != "" {
			return fmt.Errorf("%s: freeform text set on an option answer: %w", question.ID, ErrInvalidAnswer)
		}
		return checkOptionIndex(question, typed.Index)
	case MultiChoice:
		return checkSelection(question, typed.Labels)
	}
	return nil
}

func checkOptionIndex(question catalog.Question, index int) error {
	if index < 0 || index >= len(question.Options) {
		return fmt.Errorf("%s: option %d out of range: %w", question.ID, index, ErrInvalidAnswer)
	}
	return nil
}

func checkSelection(question catalog.Question, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	hasNone := false
	for _, label := range labels {
		if question.OptionIndex(label) < 0 {
			return fmt.Errorf("%s: unknown option %q: %w", question.ID, label, ErrInvalidAnswer)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%s: option %q selected twice: %w", question.ID, label, ErrInvalidAnswer)
		}
		seen[label] = struct{}{}
		if question.IsNone(label) {
			hasNone = true
		}
	}
	if hasNone && len(labels) > 1 {
		return fmt.Errorf("%s: %q excludes every other option: %w", question.ID, question.NoneOption, ErrInvalidAnswer)
	}
	if question.Limit > 0 && !hasNone && len(labels) > question.Limit {
		return &LimitError{QuestionID: question.ID, Limit: question.Limit}
	}
	return nil
}

// toggle applies one selection event and returns the new label set.
// current is never modified; on error the caller keeps it as is.
func toggle(question catalog.Question, current []string, label string, selected bool) ([]string, error) {
	if !selected {
		return slices.DeleteFunc(slices.Clone(current), func(l string) bool { return l == label }), nil
	}
	if slices.Contains(current, label) {
		return slices.Clone(current), nil
	}
	if question.IsNone(label) {
		return []string{label}, nil
	}
	next := slices.DeleteFunc(slices.Clone(current), question.IsNone)
	if question.Limit > 0 && len(next) >= question.Limit {
		return nil, &LimitError{QuestionID: question.ID, Limit: question.Limit}
	}
	return append(next, label), nil
}
