package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .scent/config.yml)")
		id := flags.String("id", "", "Stored result id")
		file := flags.String("file", "", "Result JSON file")
		output := flags.String("o", "", "Output HTML path (default: stdout)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		resultID := strings.TrimSpace(*id)
		resultFile := strings.TrimSpace(*file)
		if (resultID == "") == (resultFile == "") {
			fmt.Fprintln(stderr, "exactly one of --id or --file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx := context.Background()
		var result results.Result
		if resultFile != "" {
			loaded, err := report.LoadResult(resultFile)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			result = loaded
		} else {
			p, err := loadProject(*configPath, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			store, err := p.openStore(ctx)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			defer store.Close()
			loaded, err := store.Get(ctx, resultID)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			result = loaded
		}

		if path := strings.TrimSpace(*output); path != "" {
			if err := writeHTML(ctx, path, result); err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return ExitOK
		}
		if err := report.ResultPage(result).Render(ctx, stdout); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
