package wizard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"scentsurvey/internal/scoring"
)

// newScoreTable builds the result table shown after completion.
func newScoreTable(noColor bool) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "계열", Width: 12},
			{Title: "점수", Width: 6},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(11),
	)
	t.SetStyles(tableStyles(noColor))
	return t
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// scoreRows converts a recommendation into table rows, top category marked.
func scoreRows(rec scoring.Recommendation) []table.Row {
	rows := make([]table.Row, 0, len(rec.Vector))
	for _, entry := range rec.Vector {
		name := string(entry.Category)
		if entry.Category == rec.Category {
			name = "★ " + name
		}
		rows = append(rows, table.Row{name, strconv.Itoa(entry.Score)})
	}
	return rows
}
