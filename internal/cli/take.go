package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
	"scentsurvey/internal/survey"
	"scentsurvey/internal/ui/wizard"
)

// takeInput allows tests to override stdin for the survey.
var takeInput io.Reader = os.Stdin

// now is the clock used to stamp results.
var now = time.Now

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .scent/config.yml)")
		uiMode := flags.String("ui", "", "Survey front end: auto|live|plain (default: config ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		noSave := flags.Bool("no-save", false, "Do not store the result")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		p, err := loadProject(*configPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		mode := *uiMode
		if mode == "" {
			mode = p.cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			p.logger.Warn(decision.warning)
		}

		in := takeInput
		if in == nil {
			in = os.Stdin
		}
		session := survey.NewSession(p.bundle.Questions)
		engine := p.engine()
		if decision.useLive {
			model := wizard.NewModel(session, engine, wizard.Options{NoColor: *noColor})
			final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(stdout)).Run()
			if err != nil {
				fmt.Fprintf(stderr, "Take failed: %v\n", err)
				return ExitError
			}
			if m, ok := final.(wizard.Model); ok && m.Quit() {
				fmt.Fprintln(stderr, "Survey cancelled.")
				return ExitError
			}
		} else if err := runPlainSurvey(bufio.NewReader(in), stdout, session, engine); err != nil {
			if errors.Is(err, errAborted) {
				fmt.Fprintln(stderr, "Survey cancelled.")
				return ExitError
			}
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		if !session.Completed() {
			fmt.Fprintln(stderr, "Survey cancelled.")
			return ExitError
		}

		result := results.NewResult(session.Questions(), session.Answers(), engine.Recommend(session), now())
		same := 0
		if !*noSave {
			saved, count, err := saveResult(context.Background(), p, result)
			if err != nil {
				fmt.Fprintf(stderr, "Take failed: %v\n", err)
				return ExitError
			}
			result, same = saved, count
		}
		fmt.Fprintln(stdout)
		if err := report.WriteText(stdout, result); err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		printSameAnswers(stdout, same)
		return ExitOK
	}
}

// saveResult persists a result in the configured store and reports how many
// stored results, this one included, share its answers.
func saveResult(ctx context.Context, p project, result results.Result) (results.Result, int, error) {
	store, err := p.openStore(ctx)
	if err != nil {
		return results.Result{}, 0, err
	}
	defer store.Close()
	saved, err := store.Save(ctx, result)
	if err != nil {
		return results.Result{}, 0, err
	}
	same, err := store.CountByAnswers(ctx, saved.AnswersKey)
	if err != nil {
		return results.Result{}, 0, err
	}
	p.logger.Info("saved result", "id", saved.ID, "recommended", saved.Recommended, "same_answers", same)
	return saved, same, nil
}

// printSameAnswers notes earlier results with identical answers.
func printSameAnswers(w io.Writer, same int) {
	if same > 1 {
		fmt.Fprintf(w, "same answers stored %d times\n", same)
	}
}
