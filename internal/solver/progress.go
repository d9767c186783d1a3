package solver

import (
	"fmt"
	"io"
	"time"
)

// ProgressPrinter is an Observer that writes plain progress lines. Used when
// the live UI is off.
type ProgressPrinter struct {
	W io.Writer
}

// OnSolveStart announces the run.
func (p ProgressPrinter) OnSolveStart(runID string, quizLength, attemptCount int) {
	fmt.Fprintf(p.W, "Run %s: %d attempts of length %d\n", runID, attemptCount, quizLength)
}

// OnGenerate reports the initial candidate set size.
func (p ProgressPrinter) OnGenerate(seed string, seedScore, candidates int) {
	fmt.Fprintf(p.W, "Seed %s (score %d) generated %d candidates\n", seed, seedScore, candidates)
}

// OnReduceStep reports one reduction.
func (p ProgressPrinter) OnReduceStep(step StepStat) {
	fmt.Fprintf(p.W, "Applied %s (score %d): %d -> %d candidates\n", step.Attempt, step.Score, step.Before, step.After)
}

// OnSolveEnd reports the final count.
func (p ProgressPrinter) OnSolveEnd(stats Stats) {
	fmt.Fprintf(p.W, "Found %d possible answer keys in %s\n", stats.Surviving, stats.WallTime.Round(time.Millisecond))
}
