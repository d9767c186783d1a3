package quiz

import (
	"errors"
	"testing"
)

func mustAttempt(t *testing.T, raw string, score int) Attempt {
	t.Helper()
	attempt, err := ParseAttempt(raw, score)
	if err != nil {
		t.Fatalf("parse attempt %q/%d: %v", raw, score, err)
	}
	return attempt
}

func mustKey(t *testing.T, raw string) Key {
	t.Helper()
	key, err := ParseKey(raw)
	if err != nil {
		t.Fatalf("parse key %q: %v", raw, err)
	}
	return key
}

// TestParseAttemptRejectsImpossibleScore verifies score > length fails.
func TestParseAttemptRejectsImpossibleScore(t *testing.T) {
	_, err := ParseAttempt("ABCD", 5)
	if !errors.Is(err, ErrImpossibleScore) {
		t.Fatalf("expected ErrImpossibleScore, got %v", err)
	}
}

// TestParseAttemptRejectsNegativeScore verifies negative scores fail.
func TestParseAttemptRejectsNegativeScore(t *testing.T) {
	_, err := ParseAttempt("ABCD", -1)
	if !errors.Is(err, ErrImpossibleScore) {
		t.Fatalf("expected ErrImpossibleScore, got %v", err)
	}
}

// TestParseAttemptRejectsEmptyAnswers verifies an empty answer string fails.
func TestParseAttemptRejectsEmptyAnswers(t *testing.T) {
	_, err := ParseAttempt("", 0)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

// TestCheckCountsExactMatches verifies the exact-score match predicate.
func TestCheckCountsExactMatches(t *testing.T) {
	cases := []struct {
		attempt string
		score   int
		key     string
		want    bool
	}{
		{"AA", 1, "AB", true},
		{"AA", 2, "AB", false},
		{"AB", 2, "AB", true},
		{"AB", 0, "CD", true},
		{"AB", 1, "CD", false},
		{"ABCD", 4, "ABCD", true},
		{"ABCD", 3, "ABCD", false},
	}
	for _, tc := range cases {
		attempt := mustAttempt(t, tc.attempt, tc.score)
		got, err := attempt.Check(mustKey(t, tc.key))
		if err != nil {
			t.Fatalf("check %q/%d against %q: %v", tc.attempt, tc.score, tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("check %q/%d against %q: got %v, want %v", tc.attempt, tc.score, tc.key, got, tc.want)
		}
	}
}

// TestCheckExactCopyRoundTrip verifies a perfect-score attempt accepts its own
// sequence and rejects any key differing in one position.
func TestCheckExactCopyRoundTrip(t *testing.T) {
	key := mustKey(t, "ACBDDA")
	attempt := mustAttempt(t, key.String(), key.Len())
	ok, err := attempt.Check(key)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !ok {
		t.Fatalf("perfect attempt rejected its own key")
	}

	answers := key.answers
	for i := range answers {
		for _, replacement := range Alphabet {
			if replacement == answers[i] {
				continue
			}
			mutated := make([]Answer, len(answers))
			copy(mutated, answers)
			mutated[i] = replacement
			other, err := NewKey(mutated)
			if err != nil {
				t.Fatalf("build mutated key: %v", err)
			}
			ok, err := attempt.Check(other)
			if err != nil {
				t.Fatalf("check mutated key: %v", err)
			}
			if ok {
				t.Fatalf("perfect attempt accepted differing key %s", other)
			}
		}
	}
}

// TestCheckRejectsLengthMismatch verifies the length contract is enforced.
func TestCheckRejectsLengthMismatch(t *testing.T) {
	attempt := mustAttempt(t, "AB", 1)
	_, err := attempt.Check(mustKey(t, "ABC"))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

// TestAttemptIsImmutable verifies Answers returns a copy.
func TestAttemptIsImmutable(t *testing.T) {
	attempt := mustAttempt(t, "ABCD", 2)
	answers := attempt.Answers()
	answers[0] = AnswerD
	if attempt.String() != "ABCD" {
		t.Fatalf("attempt mutated through accessor: %s", attempt)
	}
}

// TestNewKeyRejectsSentinel verifies keys never contain the no-answer value.
func TestNewKeyRejectsSentinel(t *testing.T) {
	_, err := ParseKey("AXBD")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
}
