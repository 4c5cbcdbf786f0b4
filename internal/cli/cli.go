// Package cli implements the scent command line.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  scent <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"scent <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses command flags and reports an exit code when the command
// should stop. maxArgs < 0 allows any number of positional arguments.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, maxArgs int, stdout, stderr io.Writer) (int, bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if maxArgs >= 0 && flags.NArg() > maxArgs {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[maxArgs:], " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .scent/config.yml and the default catalogs", []string{
		"scent init [--config <path>] [--yes]",
	}, runInit),
	command("validate", "Validate the config and catalogs", []string{
		"scent validate [--config <path>]",
	}, runValidate),
	command("take", "Take the survey interactively", []string{
		"scent take [--config <path>] [--ui auto|live|plain] [--no-color] [--no-save]",
	}, runTake),
	command("score", "Score an answers file", []string{
		"scent score [--config <path>] [--save] [--json <path>] [--html <path>] <answers.yml>",
	}, runScore),
	command("report", "Render a stored result as HTML", []string{
		"scent report --id <result-id> [-o <file.html>] [--config <path>]",
		"scent report --file <result.json> [-o <file.html>]",
	}, runReport),
	command("history", "List stored results", []string{
		"scent history [--config <path>] [--limit <n>]",
	}, runHistory),
	command("serve", "Serve stored results over HTTP", []string{
		"scent serve [--config <path>] [--addr <host:port>] [--limit <n>]",
	}, runServe),
}
