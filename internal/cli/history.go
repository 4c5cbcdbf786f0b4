package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .scent/config.yml)")
		limit := flags.Int("limit", 20, "Maximum results to list (0 for all)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		p, err := loadProject(*configPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		ctx := context.Background()
		store, err := p.openStore(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer store.Close()
		list, err := store.List(ctx, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(list) == 0 {
			fmt.Fprintln(stdout, "No results stored.")
			return ExitOK
		}
		for _, result := range list {
			fmt.Fprintf(stdout, "%s  %s  %-10s  %s %d점\n",
				result.ID,
				result.CompletedAt.Format("2006-01-02 15:04"),
				displayRespondent(result.Respondent),
				result.Recommended,
				result.Score,
			)
		}
		return ExitOK
	}
}

func displayRespondent(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
