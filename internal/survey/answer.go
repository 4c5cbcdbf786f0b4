package survey

import (
	"slices"
	"strings"

	"scentsurvey/internal/catalog"
)

// Answer is one stored answer. A nil Answer means the question is unanswered.
// The concrete types are Text, Choice, ChoiceOrFreeform, and MultiChoice.
type Answer interface {
	// Accepts reports whether the answer shape fits the question type.
	Accepts(t catalog.QuestionType) bool
	// Present reports whether the answer is complete enough to advance.
	Present() bool
	isAnswer()
}

// Text answers a text or textarea question.
type Text struct {
	Value string
}

// Choice answers a single-select question with an option index.
type Choice struct {
	Index int
}

// ChoiceOrFreeform answers a single_other question: either an option index or
// freeform text. Build it with PickOption or Freeform so only one side is set.
type ChoiceOrFreeform struct {
	Index      int
	Text       string
	IsFreeform bool
}

// MultiChoice answers a multi question. Labels keep selection order.
type MultiChoice struct {
	Labels []string
}

// PickOption selects a listed option and clears any freeform text.
func PickOption(index int) ChoiceOrFreeform {
	return ChoiceOrFreeform{Index: index}
}

// Freeform supplies "other" text and clears any selected option.
func Freeform(text string) ChoiceOrFreeform {
	return ChoiceOrFreeform{Index: -1, Text: text, IsFreeform: true}
}

func (Text) isAnswer()             {}
func (Choice) isAnswer()           {}
func (ChoiceOrFreeform) isAnswer() {}
func (MultiChoice) isAnswer()      {}

func (a Text) Accepts(t catalog.QuestionType) bool   { return t.IsText() }
func (a Choice) Accepts(t catalog.QuestionType) bool { return t == catalog.TypeSingle }
func (a ChoiceOrFreeform) Accepts(t catalog.QuestionType) bool {
	return t == catalog.TypeSingleOther
}
func (a MultiChoice) Accepts(t catalog.QuestionType) bool { return t == catalog.TypeMulti }

func (a Text) Present() bool   { return strings.TrimSpace(a.Value) != "" }
func (a Choice) Present() bool { return a.Index >= 0 }
func (a ChoiceOrFreeform) Present() bool {
	if a.IsFreeform {
		return strings.TrimSpace(a.Text) != ""
	}
	return a.Index >= 0
}
func (a MultiChoice) Present() bool { return len(a.Labels) > 0 }

// Contains reports whether label is selected.
func (a MultiChoice) Contains(label string) bool {
	return slices.Contains(a.Labels, label)
}

// IsAnswered reports whether a stored answer counts as valid for advancing.
func IsAnswered(a Answer) bool {
	return a != nil && a.Present()
}

// clone returns an answer that shares no mutable state with a.
func clone(a Answer) Answer {
	if multi, ok := a.(MultiChoice); ok {
		return MultiChoice{Labels: slices.Clone(multi.Labels)}
	}
	return a
}
