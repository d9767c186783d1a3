package live

import (
	"testing"

	"keyseek/internal/solver"
)

// TestReduceFollowsSolveLifecycle verifies state transitions across a run.
func TestReduceFollowsSolveLifecycle(t *testing.T) {
	state := State{}
	state = Reduce(state, Event{Kind: EventSolveStart, RunID: "run-1", QuizLength: 4, AttemptCount: 3})
	if state.RunID != "run-1" || state.QuizLength != 4 || state.AttemptCount != 3 {
		t.Fatalf("start event not applied: %+v", state)
	}
	if state.StartedAt.IsZero() {
		t.Fatalf("start time not recorded")
	}

	state = Reduce(state, Event{Kind: EventGenerate, Seed: "ABCD", SeedScore: 3, Candidates: 12})
	if state.Generated != 12 || state.Seed != "ABCD" {
		t.Fatalf("generate event not applied: %+v", state)
	}
	if state.Remaining() != 12 {
		t.Fatalf("remaining should match generated, got %d", state.Remaining())
	}

	state = Reduce(state, Event{Kind: EventReduceStep, Step: solver.StepStat{Index: 1, Attempt: "AACD", Score: 2, Before: 12, After: 4}})
	if len(state.Steps) != 1 {
		t.Fatalf("step not recorded: %+v", state)
	}
	if state.Remaining() != 4 {
		t.Fatalf("remaining should track last step, got %d", state.Remaining())
	}

	state = Reduce(state, Event{Kind: EventSolveEnd, Stats: solver.Stats{Surviving: 2}})
	if !state.Done || state.Surviving != 2 {
		t.Fatalf("end event not applied: %+v", state)
	}
	if state.Remaining() != 2 {
		t.Fatalf("remaining should be surviving count, got %d", state.Remaining())
	}
}

// TestReduceKeepsStartTime verifies repeated start events keep the first
// timestamp.
func TestReduceKeepsStartTime(t *testing.T) {
	state := Reduce(State{}, Event{Kind: EventSolveStart, RunID: "a"})
	first := state.StartedAt
	state = Reduce(state, Event{Kind: EventSolveStart, RunID: "b"})
	if !state.StartedAt.Equal(first) {
		t.Fatalf("start time changed on repeat event")
	}
}

// TestRowsForState verifies the table row projection.
func TestRowsForState(t *testing.T) {
	state := State{
		Steps: []solver.StepStat{
			{Index: 1, Attempt: "AACD", Score: 2, Before: 12, After: 4},
			{Index: 2, Attempt: "DBCA", Score: 1, Before: 4, After: 2},
		},
	}
	rows := rowsForState(state)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "DBCA" || rows[1][4] != "2" {
		t.Fatalf("unexpected row %v", rows[1])
	}
}
