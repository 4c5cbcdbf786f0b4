package report

import (
	"fmt"
	"strings"

	"scentsurvey/internal/scoring"
)

// ProductName is the product line every recommendation is presented under.
const ProductName = "THE NUDE"

// defaultRespondent stands in when no name was given.
const defaultRespondent = "고객"

// Greeting returns the result heading for a respondent.
func Greeting(respondent string) string {
	name := strings.TrimSpace(respondent)
	if name == "" {
		name = defaultRespondent
	}
	return fmt.Sprintf("%s님께 추천하는 향수", name)
}

// FormatTotals returns the per-family totals in canonical order.
func FormatTotals(vector scoring.Vector) string {
	return vector.String()
}
