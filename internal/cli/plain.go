package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scentsurvey/internal/catalog"
	"scentsurvey/internal/scoring"
	"scentsurvey/internal/survey"
)

// errAborted reports that the respondent quit before finishing.
var errAborted = errors.New("survey aborted")

// Plain-mode commands typed at any prompt.
const (
	plainBack = "<"
	plainQuit = "q"
)

// runPlainSurvey walks a session with line prompts. Select questions take
// option numbers; multi questions take a comma list that is applied as toggles.
func runPlainSurvey(reader *bufio.Reader, out io.Writer, session *survey.Session, engine *scoring.Engine) error {
	for !session.Completed() {
		status := session.Status()
		question := status.Question
		fmt.Fprintf(out, "\n[%d/%d] %s\n", status.Position+1, status.Total, question.Prompt)
		printPlainOptions(out, question)
		fmt.Fprint(out, "> ")
		line, err := readLine(reader)
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return errAborted
			}
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case plainQuit:
			return errAborted
		case plainBack:
			if !session.Retreat() {
				fmt.Fprintln(out, "첫 질문입니다.")
			}
			continue
		}
		// An empty line keeps an answer given before going back.
		if line != "" || !survey.IsAnswered(session.Answer(status.Position)) {
			if err := applyPlainAnswer(session, status.Position, question, line); err != nil {
				var limitErr *survey.LimitError
				if errors.As(err, &limitErr) {
					fmt.Fprintln(out, limitErr.Message())
				} else {
					fmt.Fprintf(out, "입력을 확인해 주세요: %v\n", err)
				}
				continue
			}
		}
		if err := session.Advance(); err != nil {
			if errors.Is(err, survey.ErrValidation) {
				fmt.Fprintln(out, "답변을 입력하거나 선택해 주세요.")
				continue
			}
			return err
		}
		fmt.Fprintf(out, "현재 점수: %s\n", engine.Scores(session))
	}
	return nil
}

func printPlainOptions(out io.Writer, question catalog.Question) {
	switch question.Type {
	case catalog.TypeText, catalog.TypeTextarea:
		if question.Placeholder != "" {
			fmt.Fprintf(out, "  (%s)\n", question.Placeholder)
		}
		return
	}
	for i, option := range question.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, option.Label)
	}
	switch question.Type {
	case catalog.TypeSingleOther:
		fmt.Fprintln(out, "  번호를 고르거나 직접 입력하세요.")
	case catalog.TypeMulti:
		if question.Limit > 0 {
			fmt.Fprintf(out, "  번호를 쉼표로 구분해 최대 %d개 고르세요.\n", question.Limit)
		} else {
			fmt.Fprintln(out, "  번호를 쉼표로 구분해 고르세요.")
		}
	}
}

// applyPlainAnswer records one input line; a rejected line leaves the prior answer.
func applyPlainAnswer(session *survey.Session, index int, question catalog.Question, line string) error {
	switch question.Type {
	case catalog.TypeText, catalog.TypeTextarea:
		return session.SetText(index, line)
	case catalog.TypeSingle:
		option, err := parseOptionNumber(question, line)
		if err != nil {
			return err
		}
		return session.SelectOption(index, option)
	case catalog.TypeSingleOther:
		if option, err := parseOptionNumber(question, line); err == nil {
			return session.SelectOption(index, option)
		}
		return session.SetFreeform(index, line)
	case catalog.TypeMulti:
		return applyPlainSelection(session, index, question, line)
	default:
		return fmt.Errorf("%w %q", catalog.ErrUnknownQuestionType, question.Type)
	}
}

// applyPlainSelection replaces the selection through Toggle so the none and
// limit rules apply exactly as they do interactively.
func applyPlainSelection(session *survey.Session, index int, question catalog.Question, line string) error {
	var labels []string
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		option, err := parseOptionNumber(question, field)
		if err != nil {
			return err
		}
		labels = append(labels, question.Options[option].Label)
	}
	previous := session.Answer(index)
	if err := session.RecordAnswer(index, nil); err != nil {
		return err
	}
	for _, label := range labels {
		if err := session.Toggle(index, label, true); err != nil {
			_ = session.RecordAnswer(index, previous)
			return err
		}
	}
	return nil
}

func parseOptionNumber(question catalog.Question, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(question.Options) {
		return -1, fmt.Errorf("option number between 1 and %d expected", len(question.Options))
	}
	return n - 1, nil
}
