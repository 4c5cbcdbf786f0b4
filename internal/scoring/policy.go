package scoring

// FreeformWeight is what freeform "other" text contributes to any category.
// The weight catalog has no entries for typed-in answers, so this stays 0.
const FreeformWeight = 0

// Policy names the scoring rules that are not expressed in the weight catalog.
type Policy struct {
	// PreferenceQuestionID marks the multi question whose labels name categories
	// directly. Empty disables the bonus.
	PreferenceQuestionID string
	// PreferenceBonus is added to a category each time its own name is selected
	// on the preference question.
	PreferenceBonus int
}

// DefaultPolicy rewards direct picks on the scent_like question with +3.
func DefaultPolicy() Policy {
	return Policy{
		PreferenceQuestionID: "scent_like",
		PreferenceBonus:      3,
	}
}
