// Package scoring turns a survey's answers into per-category scores.
//
// Scores are always recomputed from the full answer sequence, so calling
// Scores after every mutation is safe and order independent.
package scoring

import (
	"scentsurvey/internal/catalog"
	"scentsurvey/internal/survey"
)

// Engine scores answer sequences against one catalog bundle.
type Engine struct {
	bundle catalog.Bundle
	policy Policy
}

// Recommendation is the top category together with the vector it came from.
type Recommendation struct {
	Category catalog.Category `json:"category"`
	Score    int              `json:"score"`
	Vector   Vector           `json:"scores"`
}

// NewEngine builds an engine over a loaded bundle.
func NewEngine(bundle catalog.Bundle, policy Policy) *Engine {
	return &Engine{bundle: bundle, policy: policy}
}

// Categories returns the canonical category set.
func (e *Engine) Categories() catalog.Categories {
	return e.bundle.Categories()
}

// Scores computes the vector for a session's current answers.
func (e *Engine) Scores(session *survey.Session) Vector {
	return e.ComputeScores(session.Answers())
}

// Recommend computes the vector for a session and picks the top category.
func (e *Engine) Recommend(session *survey.Session) Recommendation {
	return e.RecommendAnswers(session.Answers())
}

// RecommendAnswers picks the first category with the strictly greatest score.
func (e *Engine) RecommendAnswers(answers []survey.Answer) Recommendation {
	vector := e.ComputeScores(answers)
	top, _ := vector.Top()
	return Recommendation{Category: top.Category, Score: top.Score, Vector: vector}
}

// ComputeScores accumulates weights for an answer sequence aligned with the
// bundle's questions. Unanswered questions and questions without a weight
// entry contribute nothing.
func (e *Engine) ComputeScores(answers []survey.Answer) Vector {
	vector := NewVector(e.bundle.Categories())
	for idx, answer := range answers {
		if idx >= len(e.bundle.Questions) {
			break
		}
		question := e.bundle.Questions[idx]
		if !survey.IsAnswered(answer) || !answer.Accepts(question.Type) {
			continue
		}
		weights, ok := e.bundle.Weights.Question(e.bundle.Normalizer.NormalizePrompt(question.Prompt))
		if !ok {
			continue
		}
		switch typed := answer.(type) {
		case survey.MultiChoice:
			for _, label := range typed.Labels {
				e.applyPreference(vector, question, label)
				e.applyOption(vector, weights, label)
			}
		case survey.Choice:
			e.applyIndex(vector, question, weights, typed.Index)
		case survey.ChoiceOrFreeform:
			if typed.IsFreeform {
				continue
			}
			e.applyIndex(vector, question, weights, typed.Index)
		}
	}
	return vector
}

func (e *Engine) applyPreference(vector Vector, question catalog.Question, label string) {
	if e.policy.PreferenceQuestionID == "" || question.ID != e.policy.PreferenceQuestionID {
		return
	}
	if question.IsNone(label) {
		return
	}
	vector.add(catalog.Category(label), e.policy.PreferenceBonus)
}

func (e *Engine) applyIndex(vector Vector, question catalog.Question, weights catalog.WeightQuestion, index int) {
	if index < 0 || index >= len(question.Options) {
		return
	}
	e.applyOption(vector, weights, question.Options[index].Label)
}

func (e *Engine) applyOption(vector Vector, weights catalog.WeightQuestion, label string) {
	option, ok := weights.Option(e.bundle.Normalizer.NormalizeOption(label))
	if !ok {
		return
	}
	for category, weight := range option.Weights {
		vector.add(category, weight)
	}
}
