// Package wizard is the interactive terminal front end for a survey session.
package wizard

import (
	"errors"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/scoring"
	"scentsurvey/internal/survey"
)

// Messages shown to the respondent.
const (
	msgUnanswered = "답변을 입력하거나 선택해 주세요."
	otherLabel    = "기타(직접 입력)"
)

// Model drives one survey session with Bubble Tea.
type Model struct {
	session  *survey.Session
	engine   *scoring.Engine
	cursor   int
	input    textinput.Model
	area     textarea.Model
	scores   table.Model
	message  string
	noColor  bool
	quitting bool
}

// Options configures the wizard.
type Options struct {
	NoColor bool
}

// NewModel builds a wizard positioned at the session's current question.
func NewModel(session *survey.Session, engine *scoring.Engine, opts Options) Model {
	input := textinput.New()
	input.CharLimit = 200
	area := textarea.New()
	area.ShowLineNumbers = false
	area.SetHeight(4)
	m := Model{
		session: session,
		engine:  engine,
		input:   input,
		area:    area,
		scores:  newScoreTable(opts.NoColor),
		noColor: opts.NoColor,
	}
	m.load()
	return m
}

// Init has no startup command; the wizard waits for keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes key presses to the current question.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		width := max(typed.Width-4, 20)
		m.input.Width = width
		m.area.SetWidth(width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// Completed reports whether the respondent finished the survey.
func (m Model) Completed() bool {
	return m.session.Completed()
}

// Quit reports whether the respondent aborted before finishing.
func (m Model) Quit() bool {
	return m.quitting
}

// Recommendation returns the current top category and vector.
func (m Model) Recommendation() scoring.Recommendation {
	return m.engine.Recommend(m.session)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "esc" {
		m.quitting = !m.session.Completed()
		return m, tea.Quit
	}
	if m.session.Completed() {
		if key == "enter" || key == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	switch key {
	case "ctrl+n":
		return m.next(), nil
	case "ctrl+p":
		return m.prev(), nil
	}
	question := m.session.Status().Question
	switch {
	case question.Type.IsText():
		return m.handleText(msg, question)
	case question.Type == catalog.TypeMulti:
		return m.handleMulti(msg, question), nil
	default:
		return m.handleSingle(msg, question)
	}
}

func (m Model) handleText(msg tea.KeyMsg, question catalog.Question) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if question.Type == catalog.TypeText {
		if msg.String() == "enter" {
			return m.next(), nil
		}
		m.input, cmd = m.input.Update(msg)
		m.record(m.session.SetText(m.session.Position(), m.input.Value()))
		return m, cmd
	}
	m.area, cmd = m.area.Update(msg)
	m.record(m.session.SetText(m.session.Position(), m.area.Value()))
	return m, cmd
}

func (m Model) handleSingle(msg tea.KeyMsg, question catalog.Question) (tea.Model, tea.Cmd) {
	rows := len(question.Options)
	if question.Type == catalog.TypeSingleOther {
		rows++
	}
	onOther := question.Type == catalog.TypeSingleOther && m.cursor == len(question.Options)
	switch msg.String() {
	case "up":
		m.moveCursor(-1, rows)
		return m, nil
	case "down":
		m.moveCursor(1, rows)
		return m, nil
	case "enter":
		if !onOther {
			m.record(m.session.SelectOption(m.session.Position(), m.cursor))
		}
		return m.next(), nil
	}
	if onOther {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.record(m.session.SetFreeform(m.session.Position(), m.input.Value()))
		return m, cmd
	}
	if key := msg.String(); key == " " || key == "space" {
		m.record(m.session.SelectOption(m.session.Position(), m.cursor))
	}
	return m, nil
}

func (m Model) handleMulti(msg tea.KeyMsg, question catalog.Question) Model {
	switch msg.String() {
	case "up":
		m.moveCursor(-1, len(question.Options))
	case "down":
		m.moveCursor(1, len(question.Options))
	case " ", "space":
		position := m.session.Position()
		label := question.Options[m.cursor].Label
		if !m.session.Available(position, label) {
			return m
		}
		selected := false
		if multi, ok := m.session.Answer(position).(survey.MultiChoice); ok {
			selected = multi.Contains(label)
		}
		m.record(m.session.Toggle(position, label, !selected))
	case "enter":
		return m.next()
	}
	return m
}

// record surfaces a rejected mutation; accepted ones clear the message.
func (m *Model) record(err error) {
	var limitErr *survey.LimitError
	switch {
	case err == nil:
		m.message = ""
	case errors.As(err, &limitErr):
		m.message = limitErr.Message()
	default:
		m.message = err.Error()
	}
}

func (m *Model) moveCursor(delta, rows int) {
	if rows == 0 {
		return
	}
	m.cursor = (m.cursor + delta + rows) % rows
	if question := m.session.Status().Question; question.Type == catalog.TypeSingleOther {
		if m.cursor == len(question.Options) {
			m.input.Focus()
		} else {
			m.input.Blur()
		}
	}
}

func (m Model) next() Model {
	if err := m.session.Advance(); err != nil {
		if errors.Is(err, survey.ErrValidation) {
			m.message = msgUnanswered
		} else {
			m.message = err.Error()
		}
		return m
	}
	m.message = ""
	if m.session.Completed() {
		m.scores.SetRows(scoreRows(m.Recommendation()))
		return m
	}
	m.load()
	return m
}

func (m Model) prev() Model {
	if m.session.Retreat() {
		m.message = ""
		m.load()
	}
	return m
}

// load syncs the inputs and cursor with the stored answer of the current question.
func (m *Model) load() {
	status := m.session.Status()
	if status.Total == 0 {
		return
	}
	question := status.Question
	answer := m.session.Answer(status.Position)
	m.cursor = 0
	m.input.Reset()
	m.input.Blur()
	m.input.Placeholder = question.Placeholder
	m.area.Reset()
	m.area.Blur()
	m.area.Placeholder = question.Placeholder

	switch typed := answer.(type) {
	case survey.Text:
		if question.Type == catalog.TypeTextarea {
			m.area.SetValue(typed.Value)
		} else {
			m.input.SetValue(typed.Value)
		}
	case survey.Choice:
		m.cursor = typed.Index
	case survey.ChoiceOrFreeform:
		if typed.IsFreeform {
			m.cursor = len(question.Options)
			m.input.SetValue(typed.Text)
		} else {
			m.cursor = typed.Index
		}
	}

	switch {
	case question.Type == catalog.TypeText:
		m.input.Focus()
	case question.Type == catalog.TypeTextarea:
		m.area.Focus()
	case question.Type == catalog.TypeSingleOther && m.cursor == len(question.Options):
		m.input.Focus()
	}
}
