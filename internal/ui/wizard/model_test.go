package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/scoring"
	"scentsurvey/internal/survey"
)

func fixtureBundle() catalog.Bundle {
	return catalog.Bundle{
		Questions: []catalog.Question{
			{ID: "name", Prompt: "Your name", Type: catalog.TypeText},
			{ID: "likes", Prompt: "Pick up to two", Type: catalog.TypeMulti, Limit: 2, NoneOption: "None",
				Options: []catalog.Option{{Label: "Citrus"}, {Label: "Floral"}, {Label: "Woody"}, {Label: "None"}}},
			{ID: "moment", Prompt: "When?", Type: catalog.TypeSingleOther,
				Options: []catalog.Option{{Label: "Daily"}, {Label: "Date"}}},
		},
		Weights: catalog.WeightSpec{
			Categories: catalog.Categories{"Citrus", "Floral", "Woody"},
			Questions: []catalog.WeightQuestion{
				{Prompt: "Pick up to two", Options: []catalog.WeightOption{
					{Label: "Citrus", Weights: map[catalog.Category]int{"Citrus": 1}},
					{Label: "Woody", Weights: map[catalog.Category]int{"Woody": 2}},
				}},
				{Prompt: "When?", Options: []catalog.WeightOption{
					{Label: "Date", Weights: map[catalog.Category]int{"Floral": 3}},
				}},
			},
		},
	}
}

func newFixtureModel() (Model, *survey.Session) {
	bundle := fixtureBundle()
	session := survey.NewSession(bundle.Questions)
	return NewModel(session, scoring.NewEngine(bundle, scoring.Policy{}), Options{NoColor: true}), session
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(key)
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = model
	}
	return m
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	prev  = tea.KeyMsg{Type: tea.KeyCtrlP}
)

// TestTypeNameAndAdvance verifies text input is stored and enter advances.
func TestTypeNameAndAdvance(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, runes("Jane"), enter)
	if session.Position() != 1 {
		t.Fatalf("expected position 1, got %d", session.Position())
	}
	if text, ok := session.Answer(0).(survey.Text); !ok || text.Value != "Jane" {
		t.Fatalf("unexpected name answer %#v", session.Answer(0))
	}
	if !strings.Contains(m.View(), "2/3") {
		t.Fatalf("expected progress 2/3, got:\n%s", m.View())
	}
}

// TestEnterOnEmptyShowsMessage verifies an unanswered question blocks advance.
func TestEnterOnEmptyShowsMessage(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, enter)
	if session.Position() != 0 {
		t.Fatalf("expected to stay at 0, got %d", session.Position())
	}
	if !strings.Contains(m.View(), msgUnanswered) {
		t.Fatalf("expected unanswered message, got:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "[◀ 이전]") {
		t.Fatalf("expected nav buttons, got:\n%s", m.View())
	}
}

// TestMultiLimitMessage verifies the third pick is refused with the alert.
func TestMultiLimitMessage(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, space, down, space, down, space)
	if !strings.Contains(m.View(), "최대 2개까지 선택할 수 있습니다.") {
		t.Fatalf("expected limit message, got:\n%s", m.View())
	}
	multi, ok := session.Answer(1).(survey.MultiChoice)
	if !ok || strings.Join(multi.Labels, ",") != "Citrus,Floral" {
		t.Fatalf("unexpected selection %#v", session.Answer(1))
	}
}

// TestNoneDisablesSiblings verifies none-exclusivity is rendered.
func TestNoneDisablesSiblings(t *testing.T) {
	m, _ := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, space, down, down, down, space)
	view := m.View()
	if !strings.Contains(view, "[-] Citrus") || !strings.Contains(view, "[x] None") {
		t.Fatalf("expected None selected and siblings disabled, got:\n%s", view)
	}
}

// TestDisabledSiblingIgnoresSpace verifies space on a disabled option keeps None selected.
func TestDisabledSiblingIgnoresSpace(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, down, down, down, space, up, up, up, space)
	answer, ok := session.Answer(1).(survey.MultiChoice)
	if !ok || len(answer.Labels) != 1 || answer.Labels[0] != "None" {
		t.Fatalf("expected only None selected, got %#v", session.Answer(1))
	}
	if !strings.Contains(m.View(), "[-] Citrus") {
		t.Fatalf("expected Citrus to stay disabled, got:\n%s", m.View())
	}
}

// TestLiveScoreLine verifies the running totals follow each toggle.
func TestLiveScoreLine(t *testing.T) {
	m, _ := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, space)
	if !strings.Contains(m.View(), "현재 점수: Citrus 1점, Floral 0점, Woody 0점") {
		t.Fatalf("expected live scores, got:\n%s", m.View())
	}
	m = press(t, m, space)
	if !strings.Contains(m.View(), "Citrus 0점") {
		t.Fatalf("expected deselect to drop the score, got:\n%s", m.View())
	}
}

// TestPrevRestoresAnswer verifies retreating reloads the stored text.
func TestPrevRestoresAnswer(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, prev)
	if session.Position() != 0 {
		t.Fatalf("expected position 0, got %d", session.Position())
	}
	if m.input.Value() != "Jane" {
		t.Fatalf("expected input to hold stored name, got %q", m.input.Value())
	}
}

// TestFreeformAndCompletion verifies the other row and the result screen.
func TestFreeformAndCompletion(t *testing.T) {
	m, session := newFixtureModel()
	m = press(t, m, runes("Jane"), enter, down, down, space, enter)
	m = press(t, m, down, down, runes("Gym"))
	answer, ok := session.Answer(2).(survey.ChoiceOrFreeform)
	if !ok || !answer.IsFreeform || answer.Text != "Gym" {
		t.Fatalf("unexpected freeform answer %#v", session.Answer(2))
	}
	m = press(t, m, enter)
	if !m.Completed() || m.Quit() {
		t.Fatalf("expected completed survey")
	}
	rec := m.Recommendation()
	if rec.Category != "Woody" || rec.Score != 2 {
		t.Fatalf("unexpected recommendation %+v", rec)
	}
	view := m.View()
	for _, token := range []string{"Jane님께 추천하는 향수", "THE NUDE", "Citrus 0점, Floral 0점, Woody 2점"} {
		if !strings.Contains(view, token) {
			t.Fatalf("expected %q in result view, got:\n%s", token, view)
		}
	}
}

// TestEscQuits verifies aborting marks the model as quit.
func TestEscQuits(t *testing.T) {
	m, _ := newFixtureModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(Model).Quit() {
		t.Fatalf("expected quit command")
	}
}
