package survey

import (
	"fmt"
	"slices"

	"scentsurvey/internal/catalog"
)

// Session walks one respondent through a question catalog.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	questions []catalog.Question
	answers   []Answer
	position  int
	completed bool
}

// Status is a read-only snapshot for the presentation layer.
type Status struct {
	Position   int
	Total      int
	Completed  bool
	Question   catalog.Question
	CanAdvance bool
	CanRetreat bool
	IsLast     bool
}

// NewSession starts a session at the first question with every answer unset.
func NewSession(questions []catalog.Question) *Session {
	return &Session{
		questions: slices.Clone(questions),
		answers:   make([]Answer, len(questions)),
	}
}

// Questions returns the catalog the session walks.
func (s *Session) Questions() []catalog.Question {
	return slices.Clone(s.questions)
}

// Position returns the current question index.
func (s *Session) Position() int {
	return s.position
}

// Completed reports whether the last question has been advanced past.
func (s *Session) Completed() bool {
	return s.completed
}

// Answer returns the stored answer for a question, or nil when unanswered.
func (s *Session) Answer(index int) Answer {
	if index < 0 || index >= len(s.answers) {
		return nil
	}
	return clone(s.answers[index])
}

// Answers returns a copy of the answer sequence aligned with the catalog.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	for i, answer := range s.answers {
		out[i] = clone(answer)
	}
	return out
}

// Status reports the current position and navigation availability.
func (s *Session) Status() Status {
	status := Status{
		Position:  s.position,
		Total:     len(s.questions),
		Completed: s.completed,
	}
	if len(s.questions) == 0 {
		return status
	}
	status.Question = s.questions[s.position]
	status.IsLast = s.position == len(s.questions)-1
	status.CanRetreat = !s.completed && s.position > 0
	status.CanAdvance = !s.completed && IsAnswered(s.answers[s.position])
	return status
}

// RecordAnswer validates and stores an answer without moving the position.
// A nil answer clears the question. Rejected answers leave the session unchanged.
func (s *Session) RecordAnswer(index int, answer Answer) error {
	question, err := s.mutable(index)
	if err != nil {
		return err
	}
	if answer == nil {
		s.answers[index] = nil
		return nil
	}
	if err := validateAnswer(question, answer); err != nil {
		return err
	}
	if multi, ok := answer.(MultiChoice); ok && !multi.Present() {
		s.answers[index] = nil
		return nil
	}
	s.answers[index] = clone(answer)
	return nil
}

// Advance moves to the next question, or completes the survey from the last one.
func (s *Session) Advance() error {
	if s.completed {
		return ErrCompleted
	}
	if len(s.questions) == 0 {
		s.completed = true
		return nil
	}
	if !IsAnswered(s.answers[s.position]) {
		return fmt.Errorf("%s: %w", s.questions[s.position].ID, ErrValidation)
	}
	if s.position == len(s.questions)-1 {
		s.completed = true
		return nil
	}
	s.position++
	return nil
}

// Retreat moves back one question and reports whether it moved.
func (s *Session) Retreat() bool {
	if s.completed || s.position == 0 {
		return false
	}
	s.position--
	return true
}

// Reset clears every answer and returns to the first question.
func (s *Session) Reset() {
	s.position = 0
	s.completed = false
	for i := range s.answers {
		s.answers[i] = nil
	}
}

// SetText records free text for a text or textarea question.
func (s *Session) SetText(index int, value string) error {
	return s.RecordAnswer(index, Text{Value: value})
}

// SelectOption records an option index for a single or single_other question.
// On single_other it clears any freeform text.
func (s *Session) SelectOption(index, option int) error {
	question, err := s.mutable(index)
	if err != nil {
		return err
	}
	if question.Type == catalog.TypeSingleOther {
		return s.RecordAnswer(index, PickOption(option))
	}
	return s.RecordAnswer(index, Choice{Index: option})
}

// SetFreeform records "other" text for a single_other question and clears the option.
func (s *Session) SetFreeform(index int, text string) error {
	return s.RecordAnswer(index, Freeform(text))
}

// Toggle selects or deselects one option of a multi question, applying
// the none-exclusivity and limit rules.
func (s *Session) Toggle(index int, label string, selected bool) error {
	question, err := s.mutable(index)
	if err != nil {
		return err
	}
	if question.Type != catalog.TypeMulti {
		return fmt.Errorf("%s: toggle on %s question: %w", question.ID, question.Type, ErrInvalidAnswer)
	}
	if question.OptionIndex(label) < 0 {
		return fmt.Errorf("%s: unknown option %q: %w", question.ID, label, ErrInvalidAnswer)
	}
	var current []string
	if multi, ok := s.answers[index].(MultiChoice); ok {
		current = multi.Labels
	}
	next, err := toggle(question, current, label, selected)
	if err != nil {
		return err
	}
	if len(next) == 0 {
		s.answers[index] = nil
		return nil
	}
	s.answers[index] = MultiChoice{Labels: next}
	return nil
}

// Available reports whether an option of a multi question may be selected.
// Siblings of a selected none option are unavailable.
func (s *Session) Available(index int, label string) bool {
	if index < 0 || index >= len(s.questions) {
		return false
	}
	question := s.questions[index]
	if question.Type != catalog.TypeMulti || !question.HasNone() || question.IsNone(label) {
		return true
	}
	multi, ok := s.answers[index].(MultiChoice)
	return !ok || !multi.Contains(question.NoneOption)
}

func (s *Session) mutable(index int) (catalog.Question, error) {
	if s.completed {
		return catalog.Question{}, ErrCompleted
	}
	if index < 0 || index >= len(s.questions) {
		return catalog.Question{}, fmt.Errorf("%w: %d", ErrQuestionIndex, index)
	}
	return s.questions[index], nil
}
