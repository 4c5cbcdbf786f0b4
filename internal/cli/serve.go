package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"scentsurvey/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .scent/config.yml)")
		addr := flags.String("addr", "127.0.0.1:5000", "Address to listen on")
		limit := flags.Int("limit", 50, "Maximum results on the index page (0 for all)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*addr) == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		p, err := loadProject(*configPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		store, err := p.openStore(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		defer store.Close()

		cfg := reportserver.Config{Addr: *addr, Source: store, Limit: *limit}
		fmt.Fprintf(stdout, "Serving results at http://%s\n", cfg.Addr)
		if err := serveReport(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
