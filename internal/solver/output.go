package solver

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Results bundles everything a solve run produced.
type Results struct {
	Stats Stats    `json:"stats"`
	Keys  []string `json:"keys"`
}

// WriteKeys writes surviving keys to a file, one per line.
func WriteKeys(path string, keys []string) error {
	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString(key)
		builder.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write keys: %w", err)
	}
	return nil
}

// WriteResults writes the run results as pretty JSON.
func WriteResults(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
