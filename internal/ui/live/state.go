package live

import (
	"time"

	"keyseek/internal/solver"
)

// State captures the live UI state for a solve run.
type State struct {
	RunID        string
	QuizLength   int
	AttemptCount int
	Seed         string
	SeedScore    int
	Generated    int
	Steps        []solver.StepStat
	Surviving    int
	Done         bool
	StartedAt    time.Time
}

// Remaining returns the current candidate count.
func (s State) Remaining() int {
	if s.Done {
		return s.Surviving
	}
	if len(s.Steps) > 0 {
		return s.Steps[len(s.Steps)-1].After
	}
	return s.Generated
}

// Reduce folds one event into the state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventSolveStart:
		state.RunID = event.RunID
		state.QuizLength = event.QuizLength
		state.AttemptCount = event.AttemptCount
		if state.StartedAt.IsZero() {
			state.StartedAt = time.Now()
		}
	case EventGenerate:
		state.Seed = event.Seed
		state.SeedScore = event.SeedScore
		state.Generated = event.Candidates
	case EventReduceStep:
		state.Steps = append(state.Steps, event.Step)
	case EventSolveEnd:
		state.Surviving = event.Stats.Surviving
		state.Done = true
	}
	return state
}
