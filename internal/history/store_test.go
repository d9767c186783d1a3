package history

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"keyseek/internal/quiz"
	"keyseek/internal/solver"
	"keyseek/internal/testutil"
)

func mustAttempt(t *testing.T, raw string, score int) quiz.Attempt {
	t.Helper()
	attempt, err := quiz.ParseAttempt(raw, score)
	if err != nil {
		t.Fatalf("parse attempt %q/%d: %v", raw, score, err)
	}
	return attempt
}

// TestFingerprintIsStable verifies identical evidence hashes identically and
// different evidence does not.
func TestFingerprintIsStable(t *testing.T) {
	attempts := []quiz.Attempt{
		mustAttempt(t, "ABCD", 3),
		mustAttempt(t, "AACD", 2),
	}
	first, err := Fingerprint(attempts)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	second, err := Fingerprint(attempts)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if first != second {
		t.Fatalf("fingerprint not stable: %s vs %s", first, second)
	}
	other, err := Fingerprint([]quiz.Attempt{mustAttempt(t, "ABCD", 2)})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if other == first {
		t.Fatalf("different evidence collided: %s", other)
	}
}

// TestInsertAndListRuns verifies the round trip through an in-memory
// database.
func TestInsertAndListRuns(t *testing.T) {
	db, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := testutil.Context(t, 0)

	attempts := []quiz.Attempt{mustAttempt(t, "AB", 1), mustAttempt(t, "AA", 2)}
	stats := solver.Stats{
		RunID:        "run-1",
		QuizLength:   2,
		AttemptCount: 2,
		Generated:    1,
		Surviving:    1,
		WallTime:     3 * time.Millisecond,
	}
	if err := InsertRun(ctx, db, attempts, stats, []string{"AA"}); err != nil {
		t.Fatalf("insert run: %v", err)
	}

	runs, err := ListRuns(ctx, db)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	run := runs[0]
	if run.RunID != "run-1" || run.QuizLength != 2 || run.Surviving != 1 {
		t.Fatalf("unexpected run %+v", run)
	}
	if run.Fingerprint == "" {
		t.Fatalf("fingerprint not stored")
	}

	keys, err := RunKeys(ctx, db, "run-1")
	if err != nil {
		t.Fatalf("run keys: %v", err)
	}
	if diff := cmp.Diff([]string{"AA"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

// TestRunKeysUnknownRun verifies an unknown run yields no keys.
func TestRunKeysUnknownRun(t *testing.T) {
	db, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := testutil.Context(t, 0)

	keys, err := RunKeys(ctx, db, "missing")
	if err != nil {
		t.Fatalf("run keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}
