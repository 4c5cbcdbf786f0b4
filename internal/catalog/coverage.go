package catalog

import "fmt"

// Gap describes a question or option with no weight entry after normalization.
// Gaps are expected for metadata questions and never block a survey.
type Gap struct {
	QuestionID string
	Prompt     string
	Option     string
}

// String renders the gap for validation output.
func (g Gap) String() string {
	if g.Option == "" {
		return fmt.Sprintf("%s: no weights for prompt %q", g.QuestionID, g.Prompt)
	}
	return fmt.Sprintf("%s: no weights for option %q", g.QuestionID, g.Option)
}

// Coverage lists every question and option the weight catalog cannot resolve.
func (b Bundle) Coverage() []Gap {
	var gaps []Gap
	for _, question := range b.Questions {
		prompt := b.Normalizer.NormalizePrompt(question.Prompt)
		weights, ok := b.Weights.Question(prompt)
		if !ok {
			gaps = append(gaps, Gap{QuestionID: question.ID, Prompt: prompt})
			continue
		}
		for _, option := range question.Options {
			if question.IsNone(option.Label) {
				continue
			}
			label := b.Normalizer.NormalizeOption(option.Label)
			if _, ok := weights.Option(label); !ok {
				gaps = append(gaps, Gap{QuestionID: question.ID, Prompt: prompt, Option: label})
			}
		}
	}
	return gaps
}
