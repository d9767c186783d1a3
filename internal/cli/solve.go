package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"keyseek/internal/attempts"
	"keyseek/internal/config"
	"keyseek/internal/history"
	"keyseek/internal/quiz"
	"keyseek/internal/solver"
	"keyseek/internal/ui/live"
)

// runSolve builds the handler for the solve command.
func runSolve(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", ".keyseek.yml", "Path to config file")
		attemptsPath := flags.String("attempts", "", "Path to attempts file (overrides config)")
		outputPath := flags.String("output", "", "Path for surviving keys (overrides config)")
		resultsPath := flags.String("results", "", "Path for results JSON (overrides config)")
		workers := flags.Int("workers", 0, "Reduction worker count (overrides config)")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain (overrides config)")
		dbPath := flags.String("db", "", "History database path (overrides config)")
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

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		applyOverrides(&cfg, *attemptsPath, *outputPath, *resultsPath, *workers, *uiMode, *dbPath)

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		loaded, err := attempts.Load(cfg.Attempts)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load attempts: %v\n", err)
			return ExitError
		}

		var observer solver.Observer
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			observer = controller
		} else {
			observer = solver.ProgressPrinter{W: stdout}
		}

		keys, stats, err := solver.Infer(loaded, solver.Options{
			Workers:  cfg.Workers,
			Observer: observer,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Solve failed: %v\n", err)
			return ExitError
		}

		if err := solver.WriteKeys(cfg.Output, keys); err != nil {
			fmt.Fprintf(stderr, "Failed to write keys: %v\n", err)
			return ExitError
		}
		if cfg.Results != "" {
			if err := solver.WriteResults(cfg.Results, solver.Results{Stats: stats, Keys: keys}); err != nil {
				fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
				return ExitError
			}
		}
		if cfg.HistoryDB != "" {
			if err := ingestHistory(cfg.HistoryDB, loaded, stats, keys); err != nil {
				fmt.Fprintf(stderr, "Failed to record history: %v\n", err)
				return ExitError
			}
		}

		fmt.Fprintf(stdout, "Run %s: %d possible answer keys\n", stats.RunID, stats.Surviving)
		fmt.Fprintf(stdout, "Keys: %s\n", cfg.Output)
		if cfg.Results != "" {
			fmt.Fprintf(stdout, "Results: %s\n", cfg.Results)
		}
		return ExitOK
	}
}

// applyOverrides lets flags win over config file values.
func applyOverrides(cfg *config.Config, attemptsPath, outputPath, resultsPath string, workers int, uiMode, dbPath string) {
	if attemptsPath != "" {
		cfg.Attempts = attemptsPath
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if resultsPath != "" {
		cfg.Results = resultsPath
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if uiMode != "" {
		cfg.UI = uiMode
	}
	if dbPath != "" {
		cfg.HistoryDB = dbPath
	}
}

// ingestHistory stores a completed run in the history database.
func ingestHistory(path string, loaded []quiz.Attempt, stats solver.Stats, keys []string) error {
	db, err := history.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return history.InsertRun(ctx, db, loaded, stats, keys)
}
