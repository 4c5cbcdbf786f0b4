package survey

import (
	"errors"
	"reflect"
	"testing"

	"scentsurvey/internal/catalog"
)

func fixtureQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "name", Prompt: "name", Type: catalog.TypeText},
		{ID: "likes", Prompt: "likes", Type: catalog.TypeMulti, Limit: 2, NoneOption: "None",
			Options: []catalog.Option{{Label: "Citrus"}, {Label: "Floral"}, {Label: "Woody"}, {Label: "None"}}},
		{ID: "color", Prompt: "Pick a color", Type: catalog.TypeSingle,
			Options: []catalog.Option{{Label: "Red"}, {Label: "Blue"}}},
		{ID: "moment", Prompt: "moment", Type: catalog.TypeSingleOther,
			Options: []catalog.Option{{Label: "Daily"}, {Label: "Date"}}},
		{ID: "notes", Prompt: "notes", Type: catalog.TypeTextarea},
	}
}

func selected(t *testing.T, s *Session, index int) []string {
	t.Helper()
	answer := s.Answer(index)
	if answer == nil {
		return nil
	}
	multi, ok := answer.(MultiChoice)
	if !ok {
		t.Fatalf("expected MultiChoice, got %T", answer)
	}
	return multi.Labels
}

// TestNewSessionInitialState verifies sessions start at question 0 with aligned empty answers.
func TestNewSessionInitialState(t *testing.T) {
	s := NewSession(fixtureQuestions())
	if s.Position() != 0 || s.Completed() {
		t.Fatalf("unexpected initial state: pos=%d completed=%v", s.Position(), s.Completed())
	}
	answers := s.Answers()
	if len(answers) != 5 {
		t.Fatalf("expected 5 answer slots, got %d", len(answers))
	}
	for i, a := range answers {
		if a != nil {
			t.Fatalf("expected slot %d unset, got %#v", i, a)
		}
	}
	status := s.Status()
	if status.CanAdvance || status.CanRetreat || status.IsLast {
		t.Fatalf("unexpected initial status: %+v", status)
	}
}

// TestAdvanceRequiresAnswer verifies invalid answers block progress without changing state.
func TestAdvanceRequiresAnswer(t *testing.T) {
	s := NewSession(fixtureQuestions())
	err := s.Advance()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if err := s.SetText(0, "   "); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected whitespace to count as unanswered, got %v", err)
	}
	if s.Position() != 0 {
		t.Fatalf("expected position unchanged, got %d", s.Position())
	}
	if err := s.SetText(0, "Jane"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.Position() != 1 {
		t.Fatalf("expected position 1, got %d", s.Position())
	}
}

// TestAdvanceFromLastCompletes verifies the terminal transition and its guards.
func TestAdvanceFromLastCompletes(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustRecord(t, s, 0, Text{Value: "Jane"})
	mustRecord(t, s, 1, MultiChoice{Labels: []string{"Citrus"}})
	mustRecord(t, s, 2, Choice{Index: 1})
	mustRecord(t, s, 3, Freeform("commute"))
	mustRecord(t, s, 4, Text{Value: "fades fast"})
	for i := 0; i < 5; i++ {
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if !s.Completed() {
		t.Fatalf("expected completed")
	}
	if err := s.Advance(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected completed error, got %v", err)
	}
	if s.Retreat() {
		t.Fatalf("expected retreat to be blocked after completion")
	}
	if err := s.SetText(0, "Joe"); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected mutations to be blocked, got %v", err)
	}
	s.Reset()
	if s.Completed() || s.Position() != 0 || s.Answer(0) != nil {
		t.Fatalf("expected reset to clear state, got pos=%d answer=%#v", s.Position(), s.Answer(0))
	}
}

// TestRetreat verifies retreat is a no-op at the first question.
func TestRetreat(t *testing.T) {
	s := NewSession(fixtureQuestions())
	if s.Retreat() {
		t.Fatalf("expected no-op at position 0")
	}
	mustRecord(t, s, 0, Text{Value: "Jane"})
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !s.Status().CanRetreat {
		t.Fatalf("expected retreat to be available")
	}
	if !s.Retreat() || s.Position() != 0 {
		t.Fatalf("expected to move back to 0, got %d", s.Position())
	}
	if got := s.Answer(0).(Text).Value; got != "Jane" {
		t.Fatalf("expected answer kept after retreat, got %q", got)
	}
}

// TestToggleLimitAndNone walks the Citrus/Floral/Woody/None example.
func TestToggleLimitAndNone(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustToggle(t, s, 1, "Citrus", true)
	mustToggle(t, s, 1, "Floral", true)
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"Citrus", "Floral"}) {
		t.Fatalf("unexpected selection %v", got)
	}

	err := s.Toggle(1, "Woody", true)
	if !errors.Is(err, ErrSelectionLimit) {
		t.Fatalf("expected selection limit error, got %v", err)
	}
	var limitErr *LimitError
	if !errors.As(err, &limitErr) || limitErr.Limit != 2 || limitErr.QuestionID != "likes" {
		t.Fatalf("expected limit details, got %#v", err)
	}
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"Citrus", "Floral"}) {
		t.Fatalf("expected selection unchanged, got %v", got)
	}

	mustToggle(t, s, 1, "None", true)
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"None"}) {
		t.Fatalf("expected only None, got %v", got)
	}
	for _, label := range []string{"Citrus", "Floral", "Woody"} {
		if s.Available(1, label) {
			t.Fatalf("expected %s to be unavailable while None is selected", label)
		}
	}
	if !s.Available(1, "None") {
		t.Fatalf("expected None itself to stay available")
	}

	mustToggle(t, s, 1, "None", false)
	if s.Answer(1) != nil {
		t.Fatalf("expected empty selection to be unanswered, got %#v", s.Answer(1))
	}
	for _, label := range []string{"Citrus", "Floral", "Woody", "None"} {
		if !s.Available(1, label) {
			t.Fatalf("expected %s to be available again", label)
		}
	}
}

// TestToggleOtherClearsNone verifies picking a sibling drops the none option first.
func TestToggleOtherClearsNone(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustToggle(t, s, 1, "None", true)
	mustToggle(t, s, 1, "Woody", true)
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"Woody"}) {
		t.Fatalf("expected None replaced by Woody, got %v", got)
	}
}

// TestToggleDeselect verifies removal keeps the remaining order.
func TestToggleDeselect(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustToggle(t, s, 1, "Citrus", true)
	mustToggle(t, s, 1, "Woody", true)
	mustToggle(t, s, 1, "Citrus", false)
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"Woody"}) {
		t.Fatalf("unexpected selection %v", got)
	}
	mustToggle(t, s, 1, "Woody", true)
	if got := selected(t, s, 1); !reflect.DeepEqual(got, []string{"Woody"}) {
		t.Fatalf("expected reselect to be idempotent, got %v", got)
	}
}

// TestToggleLimitNeverExceeded drives a long event sequence against the cap.
func TestToggleLimitNeverExceeded(t *testing.T) {
	s := NewSession(fixtureQuestions())
	labels := []string{"Citrus", "Floral", "Woody", "None"}
	for i := 0; i < 64; i++ {
		label := labels[(i*7)%len(labels)]
		_ = s.Toggle(1, label, i%3 != 0)
		got := selected(t, s, 1)
		if len(got) > 2 {
			t.Fatalf("step %d: selection %v exceeds limit", i, got)
		}
		if len(got) > 1 {
			for _, l := range got {
				if l == "None" {
					t.Fatalf("step %d: None shared the set %v", i, got)
				}
			}
		}
	}
}

// TestToggleRejectsWrongQuestion verifies toggles only apply to known options of multi questions.
func TestToggleRejectsWrongQuestion(t *testing.T) {
	s := NewSession(fixtureQuestions())
	if err := s.Toggle(2, "Red", true); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected invalid answer, got %v", err)
	}
	if err := s.Toggle(1, "Amber", true); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected invalid answer, got %v", err)
	}
	if err := s.Toggle(9, "Citrus", true); !errors.Is(err, ErrQuestionIndex) {
		t.Fatalf("expected index error, got %v", err)
	}
}

// TestRecordAnswerValidatesShape verifies answers must fit their question type.
func TestRecordAnswerValidatesShape(t *testing.T) {
	cases := []struct {
		name   string
		index  int
		answer Answer
		want   error
	}{
		{"text on select", 2, Text{Value: "Red"}, ErrInvalidAnswer},
		{"choice out of range", 2, Choice{Index: 5}, ErrInvalidAnswer},
		{"negative choice", 2, Choice{Index: -1}, ErrInvalidAnswer},
		{"choice on fallback", 3, Choice{Index: 0}, ErrInvalidAnswer},
		{"both sides set", 3, ChoiceOrFreeform{Index: 0, Text: "x", IsFreeform: true}, ErrInvalidAnswer},
		{"option with text", 3, ChoiceOrFreeform{Index: 1, Text: "commute"}, ErrInvalidAnswer},
		{"unknown label", 1, MultiChoice{Labels: []string{"Amber"}}, ErrInvalidAnswer},
		{"duplicate label", 1, MultiChoice{Labels: []string{"Citrus", "Citrus"}}, ErrInvalidAnswer},
		{"none with sibling", 1, MultiChoice{Labels: []string{"None", "Citrus"}}, ErrInvalidAnswer},
		{"over limit", 1, MultiChoice{Labels: []string{"Citrus", "Floral", "Woody"}}, ErrSelectionLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(fixtureQuestions())
			mustRecord(t, s, tc.index, validFor(tc.index))
			before := s.Answers()
			err := s.RecordAnswer(tc.index, tc.answer)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !reflect.DeepEqual(before, s.Answers()) {
				t.Fatalf("expected rejected answer to leave state unchanged")
			}
		})
	}
}

// TestEmptySelectionIsUnanswered verifies an empty multi answer is stored as nil.
func TestEmptySelectionIsUnanswered(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustRecord(t, s, 1, MultiChoice{Labels: []string{"Citrus"}})
	mustRecord(t, s, 1, MultiChoice{})
	if answer := s.Answer(1); answer != nil {
		t.Fatalf("expected nil answer, got %#v", answer)
	}
	if records := EncodeAnswers(s.Questions(), s.Answers()); len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

// TestFallbackSidesClearEachOther verifies option and freeform replace one another.
func TestFallbackSidesClearEachOther(t *testing.T) {
	s := NewSession(fixtureQuestions())
	if err := s.SelectOption(3, 1); err != nil {
		t.Fatalf("select option: %v", err)
	}
	if err := s.SetFreeform(3, "gym"); err != nil {
		t.Fatalf("set freeform: %v", err)
	}
	got := s.Answer(3).(ChoiceOrFreeform)
	if !got.IsFreeform || got.Index != -1 || got.Text != "gym" {
		t.Fatalf("expected freeform only, got %+v", got)
	}
	if err := s.SelectOption(3, 0); err != nil {
		t.Fatalf("select option: %v", err)
	}
	got = s.Answer(3).(ChoiceOrFreeform)
	if got.IsFreeform || got.Index != 0 || got.Text != "" {
		t.Fatalf("expected option only, got %+v", got)
	}
	if err := s.SetFreeform(3, "  "); err != nil {
		t.Fatalf("set blank freeform: %v", err)
	}
	if IsAnswered(s.Answer(3)) {
		t.Fatalf("expected blank freeform to be unanswered")
	}
}

// TestAnswersReturnsCopies verifies callers cannot mutate stored selections.
func TestAnswersReturnsCopies(t *testing.T) {
	s := NewSession(fixtureQuestions())
	mustToggle(t, s, 1, "Citrus", true)
	answers := s.Answers()
	answers[1].(MultiChoice).Labels[0] = "Woody"
	if got := selected(t, s, 1); got[0] != "Citrus" {
		t.Fatalf("expected stored answer untouched, got %v", got)
	}
}

func validFor(index int) Answer {
	switch index {
	case 1:
		return MultiChoice{Labels: []string{"Citrus"}}
	case 2:
		return Choice{Index: 0}
	case 3:
		return PickOption(0)
	default:
		return Text{Value: "ok"}
	}
}

func mustRecord(t *testing.T, s *Session, index int, answer Answer) {
	t.Helper()
	if err := s.RecordAnswer(index, answer); err != nil {
		t.Fatalf("record answer %d: %v", index, err)
	}
}

func mustToggle(t *testing.T, s *Session, index int, label string, on bool) {
	t.Helper()
	if err := s.Toggle(index, label, on); err != nil {
		t.Fatalf("toggle %s=%v: %v", label, on, err)
	}
}
