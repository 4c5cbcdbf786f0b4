package results

import (
	"strings"
	"time"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/scoring"
	"scentsurvey/internal/survey"
)

// RespondentQuestionID names the question whose text answer becomes the respondent name.
const RespondentQuestionID = "name"

// Result is one completed survey as persisted by the store.
type Result struct {
	ID          string           `json:"id"`
	Respondent  string           `json:"respondent"`
	Recommended catalog.Category `json:"recommended"`
	Score       int              `json:"score"`
	Scores      scoring.Vector   `json:"scores"`
	Answers     []survey.Record  `json:"answers"`
	AnswersKey  string           `json:"answers_key"`
	CompletedAt time.Time        `json:"completed_at"`
}

// NewResult captures a finished session and its recommendation.
func NewResult(questions []catalog.Question, answers []survey.Answer, rec scoring.Recommendation, completedAt time.Time) Result {
	return Result{
		Respondent:  Respondent(questions, answers),
		Recommended: rec.Category,
		Score:       rec.Score,
		Scores:      rec.Vector,
		Answers:     survey.EncodeAnswers(questions, answers),
		CompletedAt: completedAt.UTC(),
	}
}

// Respondent returns the trimmed name answer, or "" when none was given.
func Respondent(questions []catalog.Question, answers []survey.Answer) string {
	for i, question := range questions {
		if question.ID != RespondentQuestionID || i >= len(answers) {
			continue
		}
		if text, ok := answers[i].(survey.Text); ok {
			return strings.TrimSpace(text.Value)
		}
	}
	return ""
}
