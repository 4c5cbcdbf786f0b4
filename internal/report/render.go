package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"scentsurvey/internal/results"
)

// RenderHTML renders the result page into a string.
func RenderHTML(ctx context.Context, result results.Result) (string, error) {
	var builder strings.Builder
	if err := ResultPage(result).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteText prints the plain-text summary used by the CLI.
func WriteText(w io.Writer, result results.Result) error {
	lines := []string{
		Greeting(result.Respondent),
		ProductName,
		string(result.Recommended),
		FormatTotals(result.Scores),
	}
	if result.ID != "" {
		lines = append(lines, "id: "+result.ID)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
