package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports an advance attempt while the current answer is missing.
	ErrValidation = errors.New("current question is not answered")
	// ErrSelectionLimit reports a multi-select change that would exceed the cap.
	ErrSelectionLimit = errors.New("selection limit exceeded")
	// ErrInvalidAnswer reports an answer whose shape or contents do not fit the question.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrCompleted reports a mutation attempted after the survey completed.
	ErrCompleted = errors.New("survey already completed")
	// ErrQuestionIndex reports a question position outside the catalog.
	ErrQuestionIndex = errors.New("question index out of range")
)

// LimitError carries the cap that a rejected selection would have exceeded.
type LimitError struct {
	QuestionID string
	Limit      int
}

// Error renders the limit failure.
func (err *LimitError) Error() string {
	return fmt.Sprintf("%s: at most %d options may be selected", err.QuestionID, err.Limit)
}

// Unwrap lets errors.Is match ErrSelectionLimit.
func (err *LimitError) Unwrap() error {
	return ErrSelectionLimit
}

// Message is the respondent-facing alert for the limit.
func (err *LimitError) Message() string {
	return fmt.Sprintf("최대 %d개까지 선택할 수 있습니다.", err.Limit)
}
