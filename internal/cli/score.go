package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
	"scentsurvey/internal/survey"
)

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .scent/config.yml)")
		save := flags.Bool("save", false, "Store the result")
		jsonPath := flags.String("json", "", "Write the result as JSON")
		htmlPath := flags.String("html", "", "Write the result page as HTML")
		if code, ok := parseFlags(cmd, flags, args, 1, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "answers file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		p, err := loadProject(*configPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}
		records, err := loadAnswerFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}
		session := survey.NewSession(p.bundle.Questions)
		if err := survey.Replay(session, records); err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}

		engine := p.engine()
		result := results.NewResult(session.Questions(), session.Answers(), engine.Recommend(session), now())
		ctx := context.Background()
		same := 0
		if *save {
			saved, count, err := saveResult(ctx, p, result)
			if err != nil {
				fmt.Fprintf(stderr, "Score failed: %v\n", err)
				return ExitError
			}
			result, same = saved, count
		}
		if path := strings.TrimSpace(*jsonPath); path != "" {
			if err := report.WriteResult(path, result); err != nil {
				fmt.Fprintf(stderr, "Score failed: %v\n", err)
				return ExitError
			}
			p.logger.Info("wrote result", "path", path)
		}
		if path := strings.TrimSpace(*htmlPath); path != "" {
			if err := writeHTML(ctx, path, result); err != nil {
				fmt.Fprintf(stderr, "Score failed: %v\n", err)
				return ExitError
			}
			p.logger.Info("wrote report", "path", path)
		}
		if err := report.WriteText(stdout, result); err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}
		printSameAnswers(stdout, same)
		return ExitOK
	}
}

// writeHTML renders the result page to path.
func writeHTML(ctx context.Context, path string, result results.Result) error {
	html, err := report.RenderHTML(ctx, result)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return os.WriteFile(path, []byte(html), 0o644)
}
