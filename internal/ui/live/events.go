package live

import "keyseek/internal/solver"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSolveStart signals the start of a solve run.
	EventSolveStart EventKind = iota
	// EventGenerate delivers the initial candidate count.
	EventGenerate
	// EventReduceStep delivers one reduction update.
	EventReduceStep
	// EventSolveEnd signals solve completion.
	EventSolveEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind         EventKind
	RunID        string
	QuizLength   int
	AttemptCount int
	Seed         string
	SeedScore    int
	Candidates   int
	Step         solver.StepStat
	Stats        solver.Stats
}
