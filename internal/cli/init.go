package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const scaffoldConfig = `version: 1
attempts: attempts.txt
output: possible_answers.txt
workers: 1
ui: auto
# results: results.json
# history_db: keyseek.duckdb
`

const scaffoldAttempts = `# One graded attempt per line: ANSWERS,score
ABCDABCDAB,6
BBCDABCDAB,5
ABCDABCDAA,7
`

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", ".", "Directory to scaffold into")
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

		wrote := 0
		for _, file := range []struct {
			name    string
			content string
		}{
			{".keyseek.yml", scaffoldConfig},
			{"attempts.txt", scaffoldAttempts},
		} {
			path := filepath.Join(*dir, file.name)
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(stdout, "Skipping %s (already exists)\n", file.name)
				continue
			}
			if err := os.WriteFile(path, []byte(file.content), 0o644); err != nil {
				fmt.Fprintf(stderr, "Failed to write %s: %v\n", file.name, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Created %s\n", file.name)
			wrote++
		}
		if wrote == 0 {
			fmt.Fprintln(stdout, "Nothing to do")
		}
		return ExitOK
	}
}
