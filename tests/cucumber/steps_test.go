package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"keyseek/internal/cli"
)

type featureState struct {
	workDir      string
	attemptsPath string
	outputPath   string
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := state.reset(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an attempts file containing:$`, state.anAttemptsFileContaining)
	ctx.Step(`^I solve the attempts$`, state.iSolveTheAttempts)
	ctx.Step(`^I validate the attempts$`, state.iValidateTheAttempts)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output file contains exactly:$`, state.theOutputFileContainsExactly)
	ctx.Step(`^the error output mentions "([^"]*)"$`, state.theErrorOutputMentions)
	ctx.Step(`^the standard output mentions "([^"]*)"$`, state.theStandardOutputMentions)
}

func (s *featureState) reset() error {
	dir, err := os.MkdirTemp("", "keyseek-cucumber-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	s.attemptsPath = filepath.Join(dir, "attempts.txt")
	s.outputPath = filepath.Join(dir, "possible_answers.txt")
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	return nil
}

func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

func (s *featureState) anAttemptsFileContaining(content *godog.DocString) error {
	return os.WriteFile(s.attemptsPath, []byte(content.Content+"\n"), 0o644)
}

func (s *featureState) iSolveTheAttempts() error {
	s.exitCode = cli.Run([]string{
		"solve",
		"--config", filepath.Join(s.workDir, ".keyseek.yml"),
		"--attempts", s.attemptsPath,
		"--output", s.outputPath,
		"--ui", "plain",
	}, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) iValidateTheAttempts() error {
	s.exitCode = cli.Run([]string{
		"validate",
		"--config", filepath.Join(s.workDir, ".keyseek.yml"),
		"--attempts", s.attemptsPath,
	}, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(code string) error {
	expected, err := strconv.Atoi(code)
	if err != nil {
		return fmt.Errorf("bad exit code %q: %w", code, err)
	}
	if s.exitCode != expected {
		return fmt.Errorf("exit code %d, expected %d\nstdout:\n%s\nstderr:\n%s",
			s.exitCode, expected, s.stdout.String(), s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputFileContainsExactly(content *godog.DocString) error {
	data, err := os.ReadFile(s.outputPath)
	if err != nil {
		return fmt.Errorf("read output: %w", err)
	}
	expected := content.Content
	if expected != "" {
		expected += "\n"
	}
	if string(data) != expected {
		return fmt.Errorf("output file mismatch:\ngot:\n%s\nexpected:\n%s", data, expected)
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(fragment string) error {
	if !strings.Contains(s.stderr.String(), fragment) {
		return fmt.Errorf("stderr does not mention %q:\n%s", fragment, s.stderr.String())
	}
	return nil
}

func (s *featureState) theStandardOutputMentions(fragment string) error {
	if !strings.Contains(s.stdout.String(), fragment) {
		return fmt.Errorf("stdout does not mention %q:\n%s", fragment, s.stdout.String())
	}
	return nil
}
