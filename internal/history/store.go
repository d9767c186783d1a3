package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"keyseek/internal/quiz"
	"keyseek/internal/solver"
)

// Run is one stored solve run.
type Run struct {
	RunID        string
	CreatedAt    time.Time
	Fingerprint  string
	QuizLength   int
	AttemptCount int
	Generated    int
	Surviving    int
	WallTime     time.Duration
}

// Fingerprint returns a stable SHA-256 digest of an attempt list, so
// re-solving identical evidence is recognizable across runs. The attempt
// order matters to the digest exactly as it does to the input file.
func Fingerprint(attempts []quiz.Attempt) (string, error) {
	type record struct {
		Answers string `json:"answers"`
		Score   int    `json:"score"`
	}
	records := make([]record, 0, len(attempts))
	for _, attempt := range attempts {
		records = append(records, record{Answers: attempt.String(), Score: attempt.Score()})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("fingerprint attempts: %w", err)
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}

// InsertRun stores one completed solve with its surviving keys.
func InsertRun(ctx context.Context, db *sql.DB, attempts []quiz.Attempt, stats solver.Stats, keys []string) error {
	if db == nil {
		return errors.New("history: db is nil")
	}
	fingerprint, err := Fingerprint(attempts)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, fingerprint, quiz_length, attempt_count, generated, surviving, wall_time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.RunID, time.Now().UTC(), fingerprint, stats.QuizLength, stats.AttemptCount,
		stats.Generated, stats.Surviving, stats.WallTime.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `INSERT INTO run_keys (run_id, key) VALUES (?, ?)`, stats.RunID, key); err != nil {
			return fmt.Errorf("insert run key: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history tx: %w", err)
	}
	return nil
}

// ListRuns returns stored runs, newest first.
func ListRuns(ctx context.Context, db *sql.DB) ([]Run, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT run_id, created_at, fingerprint, quiz_length, attempt_count, generated, surviving, wall_time_ms
		 FROM runs ORDER BY created_at DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var wallMillis int64
		if err := rows.Scan(&run.RunID, &run.CreatedAt, &run.Fingerprint, &run.QuizLength,
			&run.AttemptCount, &run.Generated, &run.Surviving, &wallMillis); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.WallTime = time.Duration(wallMillis) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// RunKeys returns the surviving keys stored for a run, sorted.
func RunKeys(ctx context.Context, db *sql.DB, runID string) ([]string, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT key FROM run_keys WHERE run_id = ? ORDER BY key`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan run key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run keys: %w", err)
	}
	return keys, nil
}
