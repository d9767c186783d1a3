package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"keyseek/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("db", "", "History database path")
		runID := flags.String("run", "", "Show the surviving keys of one run")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *dbPath == "" {
			fmt.Fprintln(stderr, "--db is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		db, err := history.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open history: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if *runID != "" {
			keys, err := history.RunKeys(ctx, db, *runID)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read run keys: %v\n", err)
				return ExitError
			}
			if len(keys) == 0 {
				fmt.Fprintf(stdout, "No keys stored for run %s\n", *runID)
				return ExitOK
			}
			for _, key := range keys {
				fmt.Fprintln(stdout, key)
			}
			return ExitOK
		}

		runs, err := history.ListRuns(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list runs: %v\n", err)
			return ExitError
		}
		if len(runs) == 0 {
			fmt.Fprintln(stdout, "No runs recorded")
			return ExitOK
		}
		fmt.Fprintf(stdout, "%-36s  %-20s  %6s  %8s  %9s  %9s\n", "RUN", "CREATED", "LENGTH", "ATTEMPTS", "GENERATED", "SURVIVING")
		for _, run := range runs {
			fmt.Fprintf(stdout, "%-36s  %-20s  %6d  %8d  %9d  %9d\n",
				run.RunID, run.CreatedAt.Format(time.DateTime), run.QuizLength,
				run.AttemptCount, run.Generated, run.Surviving)
		}
		return ExitOK
	}
}
