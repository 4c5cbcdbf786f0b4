package survey

import (
	"fmt"
	"strings"

	"scentsurvey/internal/catalog"
)

// Record is the portable form of one answer, keyed by question id and option label.
type Record struct {
	QuestionID string   `json:"question_id" yaml:"question_id"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Option     string   `json:"option,omitempty" yaml:"option,omitempty"`
	Other      string   `json:"other,omitempty" yaml:"other,omitempty"`
	Selected   []string `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// EncodeAnswers converts an answer sequence into records, skipping unanswered questions.
func EncodeAnswers(questions []catalog.Question, answers []Answer) []Record {
	records := make([]Record, 0, len(answers))
	for i, answer := range answers {
		if answer == nil || i >= len(questions) {
			continue
		}
		question := questions[i]
		record := Record{QuestionID: question.ID}
		switch typed := answer.(type) {
		case Text:
			record.Text = typed.Value
		case Choice:
			record.Option = optionLabel(question, typed.Index)
		case ChoiceOrFreeform:
			if typed.IsFreeform {
				record.Other = typed.Text
			} else {
				record.Option = optionLabel(question, typed.Index)
			}
		case MultiChoice:
			record.Selected = append([]string(nil), typed.Labels...)
		}
		records = append(records, record)
	}
	return records
}

// DecodeRecord rebuilds the answer a record describes for the given question.
func DecodeRecord(question catalog.Question, record Record) (Answer, error) {
	switch question.Type {
	case catalog.TypeText, catalog.TypeTextarea:
		return Text{Value: record.Text}, nil
	case catalog.TypeSingle:
		index, err := recordOption(question, record.Option)
		if err != nil {
			return nil, err
		}
		return Choice{Index: index}, nil
	case catalog.TypeSingleOther:
		if strings.TrimSpace(record.Other) != "" {
			if record.Option != "" {
				return nil, fmt.Errorf("%s: option and other both set: %w", question.ID, ErrInvalidAnswer)
			}
			return Freeform(record.Other), nil
		}
		index, err := recordOption(question, record.Option)
		if err != nil {
			return nil, err
		}
		return PickOption(index), nil
	case catalog.TypeMulti:
		return MultiChoice{Labels: append([]string(nil), record.Selected...)}, nil
	default:
		return nil, fmt.Errorf("%s: %w %q", question.ID, catalog.ErrUnknownQuestionType, question.Type)
	}
}

// Replay feeds records through the session in catalog order, advancing after
// each question, the same way an interactive respondent would.
func Replay(session *Session, records []Record) error {
	byID := make(map[string]Record, len(records))
	for _, record := range records {
		if _, dup := byID[record.QuestionID]; dup {
			return fmt.Errorf("duplicate answer for %q", record.QuestionID)
		}
		byID[record.QuestionID] = record
	}
	questions := session.Questions()
	known := make(map[string]struct{}, len(questions))
	for _, question := range questions {
		known[question.ID] = struct{}{}
	}
	for id := range byID {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("answer for unknown question %q", id)
		}
	}

	if len(questions) == 0 {
		return session.Advance()
	}
	for !session.Completed() {
		index := session.Position()
		question := questions[index]
		if record, ok := byID[question.ID]; ok {
			answer, err := DecodeRecord(question, record)
			if err != nil {
				return err
			}
			if err := session.RecordAnswer(index, answer); err != nil {
				return err
			}
		}
		if err := session.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func optionLabel(question catalog.Question, index int) string {
	if index < 0 || index >= len(question.Options) {
		return ""
	}
	return question.Options[index].Label
}

func recordOption(question catalog.Question, label string) (int, error) {
	index := question.OptionIndex(strings.TrimSpace(label))
	if index < 0 {
		return -1, fmt.Errorf("%s: unknown option %q: %w", question.ID, label, ErrInvalidAnswer)
	}
	return index, nil
}
