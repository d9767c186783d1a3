package solver

// Observer receives progress events while a solve runs. The solver itself
// emits no output; presentation is the caller's concern.
type Observer interface {
	// OnSolveStart fires once before any combinatorial work begins.
	OnSolveStart(runID string, quizLength, attemptCount int)
	// OnGenerate fires after the seed's candidate set has been generated.
	OnGenerate(seed string, seedScore, candidates int)
	// OnReduceStep fires after each remaining attempt has been applied.
	OnReduceStep(step StepStat)
	// OnSolveEnd fires once with the final statistics.
	OnSolveEnd(stats Stats)
}

// nopObserver ignores all events.
type nopObserver struct{}

func (nopObserver) OnSolveStart(string, int, int) {}
func (nopObserver) OnGenerate(string, int, int)   {}
func (nopObserver) OnReduceStep(StepStat)         {}
func (nopObserver) OnSolveEnd(Stats)              {}
