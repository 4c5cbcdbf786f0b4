package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
	"scentsurvey/internal/survey"
)

// View renders the current question or the final result.
func (m Model) View() string {
	if m.session.Completed() {
		return m.renderResult()
	}
	status := m.session.Status()
	if status.Total == 0 {
		return ""
	}
	parts := []string{
		m.renderProgress(status),
		stylizeBold(status.Question.Prompt, m.noColor),
		m.renderBody(status),
	}
	if m.message != "" {
		parts = append(parts, stylize(m.message, m.noColor, lipgloss.Color("196")))
	}
	parts = append(parts,
		stylize("현재 점수: "+m.engine.Scores(m.session).String(), m.noColor, lipgloss.Color("242")),
		m.renderNav(status),
		stylize(helpLine(status.Question), m.noColor, lipgloss.Color("240")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) renderProgress(status survey.Status) string {
	line := fmt.Sprintf("%d/%d", status.Position+1, status.Total)
	return stylize(line, m.noColor, lipgloss.Color("33"))
}

func (m Model) renderBody(status survey.Status) string {
	question := status.Question
	switch question.Type {
	case catalog.TypeText:
		return m.input.View()
	case catalog.TypeTextarea:
		return m.area.View()
	}
	answer := m.session.Answer(status.Position)
	lines := make([]string, 0, len(question.Options)+1)
	for i, option := range question.Options {
		marker := optionMarker(question, answer, i)
		available := m.session.Available(status.Position, option.Label)
		if !available {
			marker = "[-]"
		}
		line := cursorMark(m.cursor == i) + marker + " " + option.Label + m.displayHint(question.Display, option)
		if !available {
			line = stylize(line, m.noColor, lipgloss.Color("238"))
		}
		lines = append(lines, line)
	}
	if question.Type == catalog.TypeSingleOther {
		onOther := m.cursor == len(question.Options)
		marker := "( )"
		if typed, ok := answer.(survey.ChoiceOrFreeform); ok && typed.IsFreeform {
			marker = "(•)"
		}
		line := cursorMark(onOther) + marker + " " + otherLabel
		if onOther || m.input.Value() != "" {
			line += " " + m.input.View()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) displayHint(display catalog.Display, option catalog.Option) string {
	switch display {
	case catalog.DisplayColor:
		if option.Value == "" {
			return ""
		}
		if m.noColor {
			return " " + option.Value
		}
		return " " + lipgloss.NewStyle().Background(lipgloss.Color(option.Value)).Render("    ")
	case catalog.DisplayAudio:
		if option.Src != "" {
			return " ♪ " + option.Src
		}
	}
	return ""
}

func (m Model) renderNav(status survey.Status) string {
	prev := "◀ 이전"
	next := "다음 ▶"
	if status.IsLast {
		next = "결과 보기 ▶"
	}
	return button(prev, status.CanRetreat, m.noColor) + "   " + button(next, status.CanAdvance, m.noColor)
}

func (m Model) renderResult() string {
	rec := m.Recommendation()
	respondent := results.Respondent(m.session.Questions(), m.session.Answers())
	parts := []string{
		stylizeBold(report.Greeting(respondent), m.noColor),
		stylize(report.ProductName, m.noColor, lipgloss.Color("213")),
		string(rec.Category),
		m.scores.View(),
		report.FormatTotals(rec.Vector),
		stylize("enter: 종료", m.noColor, lipgloss.Color("240")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func optionMarker(question catalog.Question, answer survey.Answer, index int) string {
	if question.Type == catalog.TypeMulti {
		if multi, ok := answer.(survey.MultiChoice); ok && multi.Contains(question.Options[index].Label) {
			return "[x]"
		}
		return "[ ]"
	}
	switch typed := answer.(type) {
	case survey.Choice:
		if typed.Index == index {
			return "(•)"
		}
	case survey.ChoiceOrFreeform:
		if !typed.IsFreeform && typed.Index == index {
			return "(•)"
		}
	}
	return "( )"
}

func cursorMark(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

func helpLine(question catalog.Question) string {
	switch question.Type {
	case catalog.TypeText:
		return "enter: 다음 · ctrl+p: 이전 · esc: 종료"
	case catalog.TypeTextarea:
		return "ctrl+n: 다음 · ctrl+p: 이전 · esc: 종료"
	case catalog.TypeMulti:
		return "↑/↓: 이동 · space: 선택 · enter: 다음 · ctrl+p: 이전 · esc: 종료"
	default:
		return "↑/↓: 이동 · space: 선택 · enter: 선택 후 다음 · ctrl+p: 이전 · esc: 종료"
	}
}

// button renders a nav button, dimmed when disabled.
func button(label string, enabled, noColor bool) string {
	text := "[" + label + "]"
	if enabled {
		return stylize(text, noColor, lipgloss.Color("42"))
	}
	return stylize(text, noColor, lipgloss.Color("238"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func stylizeBold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
