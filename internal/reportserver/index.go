package reportserver

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
)

// indexPage lists results with links to their pages.
func indexPage(list []results.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"ko\"><head><meta charset=\"utf-8\"><title>%s</title></head><body><h1>%s</h1>",
			templ.EscapeString(report.ProductName), templ.EscapeString(report.ProductName)); err != nil {
			return err
		}
		if len(list) == 0 {
			_, err := io.WriteString(w, "<p>No results stored.</p></body></html>\n")
			return err
		}
		if _, err := io.WriteString(w, "<ul class=\"results\">"); err != nil {
			return err
		}
		for _, result := range list {
			if _, err := fmt.Fprintf(w, "<li><a href=\"/results/%s\">%s</a> %s %s</li>",
				templ.EscapeString(result.ID),
				templ.EscapeString(result.CompletedAt.Format("2006-01-02 15:04")),
				templ.EscapeString(report.Greeting(result.Respondent)),
				templ.EscapeString(fmt.Sprintf("%s %d점", result.Recommended, result.Score)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></body></html>\n")
		return err
	})
}
