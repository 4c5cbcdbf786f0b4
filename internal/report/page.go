package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"scentsurvey/internal/results"
)

// ResultPage renders a standalone HTML page for one stored result.
func ResultPage(result results.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		write := func(format string, args ...any) error {
			_, err := fmt.Fprintf(w, format, args...)
			return err
		}
		if err := write("<!doctype html>\n<html lang=\"ko\"><head><meta charset=\"utf-8\"><title>%s</title>", templ.EscapeString(ProductName)); err != nil {
			return err
		}
		if err := write("<style>%s</style></head><body>", pageStyle); err != nil {
			return err
		}
		if err := write("<main class=\"result\"><h1>%s</h1>", templ.EscapeString(Greeting(result.Respondent))); err != nil {
			return err
		}
		if err := write("<p class=\"product\">%s</p>", templ.EscapeString(ProductName)); err != nil {
			return err
		}
		if err := write("<p class=\"family\">%s</p>", templ.EscapeString(string(result.Recommended))); err != nil {
			return err
		}
		if err := write("<table class=\"scores\"><thead><tr><th>계열</th><th>점수</th></tr></thead><tbody>"); err != nil {
			return err
		}
		for _, entry := range result.Scores {
			class := ""
			if entry.Category == result.Recommended {
				class = " class=\"top\""
			}
			if err := write("<tr%s><td>%s</td><td>%d</td></tr>", class, templ.EscapeString(string(entry.Category)), entry.Score); err != nil {
				return err
			}
		}
		if err := write("</tbody></table><p class=\"totals\">%s</p>", templ.EscapeString(FormatTotals(result.Scores))); err != nil {
			return err
		}
		if !result.CompletedAt.IsZero() {
			if err := write("<footer>%s</footer>", templ.EscapeString(result.CompletedAt.Format("2006-01-02 15:04 MST"))); err != nil {
				return err
			}
		}
		return write("</main></body></html>\n")
	})
}

const pageStyle = `body{font-family:sans-serif;margin:2rem;color:#222}` +
	`.product{letter-spacing:.3em;font-weight:bold}` +
	`.family{font-size:1.5rem}` +
	`table.scores{border-collapse:collapse}` +
	`table.scores td,table.scores th{padding:.25rem .75rem;border-bottom:1px solid #ddd}` +
	`tr.top{font-weight:bold}`
