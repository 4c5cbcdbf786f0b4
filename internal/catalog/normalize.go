package catalog

import "strings"

// Normalizer bridges question catalog wording to weight catalog wording.
// The zero value maps every input to itself.
type Normalizer struct {
	prompts map[string]string
	options map[string]string
}

// NewNormalizer builds a normalizer from a normalization spec.
func NewNormalizer(spec NormalizationSpec) Normalizer {
	return Normalizer{
		prompts: copyMap(spec.Prompts),
		options: copyMap(spec.Options),
	}
}

// NormalizePrompt returns the weight catalog prompt for a question prompt.
func (n Normalizer) NormalizePrompt(text string) string {
	if mapped, ok := n.prompts[text]; ok {
		return mapped
	}
	return text
}

// NormalizeOption returns the weight catalog label for a question option label.
func (n Normalizer) NormalizeOption(text string) string {
	if mapped, ok := n.options[text]; ok {
		return mapped
	}
	return text
}

func copyMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// NormalizeText trims whitespace; used for catalog fields and user free text.
func NormalizeText(value string) string {
	return strings.TrimSpace(value)
}
