// Package attempts loads graded quiz attempts from disk. Two formats are
// supported: the flat text format of the original tool (one "ANSWERS,score"
// record per line) and a YAML document selected by file extension.
package attempts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"keyseek/internal/quiz"
)

// File is the YAML attempts document schema.
type File struct {
	Version  int      `yaml:"version"`
	Attempts []Record `yaml:"attempts"`
}

// Record is one attempt entry in a YAML attempts document.
type Record struct {
	Answers string `yaml:"answers"`
	Score   int    `yaml:"score"`
}

// Load reads and validates an attempts file. Every record is parsed eagerly
// so malformed input fails before any search begins, and all attempts are
// checked for a uniform quiz length.
func Load(path string) ([]quiz.Attempt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attempts: %w", err)
	}
	var loaded []quiz.Attempt
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		loaded, err = parseYAML(data)
	default:
		loaded, err = parseFlat(data)
	}
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, fmt.Errorf("%w: %s holds no attempts", quiz.ErrEmptyInput, filepath.Base(path))
	}
	quizLength := loaded[0].Len()
	for i, attempt := range loaded {
		if attempt.Len() != quizLength {
			return nil, fmt.Errorf("%w: attempt %d has length %d, expected %d", quiz.ErrLengthMismatch, i+1, attempt.Len(), quizLength)
		}
	}
	return loaded, nil
}

// parseFlat parses the "ANSWERS,score" line format. Blank lines and lines
// starting with # are skipped.
func parseFlat(data []byte) ([]quiz.Attempt, error) {
	var loaded []quiz.Attempt
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		answers, scoreText, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("line %d: expected ANSWERS,score, got %q", i+1, line)
		}
		score, err := strconv.Atoi(strings.TrimSpace(scoreText))
		if err != nil {
			return nil, fmt.Errorf("line %d: score is not a number: %q", i+1, strings.TrimSpace(scoreText))
		}
		attempt, err := quiz.ParseAttempt(strings.TrimSpace(answers), score)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		loaded = append(loaded, attempt)
	}
	return loaded, nil
}

// parseYAML parses the YAML attempts document.
func parseYAML(data []byte) ([]quiz.Attempt, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported attempts file version %d", file.Version)
	}
	loaded := make([]quiz.Attempt, 0, len(file.Attempts))
	for i, record := range file.Attempts {
		attempt, err := quiz.ParseAttempt(strings.TrimSpace(record.Answers), record.Score)
		if err != nil {
			return nil, fmt.Errorf("attempts[%d]: %w", i, err)
		}
		loaded = append(loaded, attempt)
	}
	return loaded, nil
}
