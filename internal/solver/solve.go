package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"keyseek/internal/quiz"
)

// Options tunes a solve run.
type Options struct {
	// Workers sets the reduction worker count; values below 2 run
	// sequentially. The result is identical either way.
	Workers int
	// Observer receives progress events; nil disables them.
	Observer Observer
}

// StepStat records one reduction step.
type StepStat struct {
	Index   int    `json:"index"`
	Attempt string `json:"attempt"`
	Score   int    `json:"score"`
	Before  int    `json:"before"`
	After   int    `json:"after"`
}

// Stats summarizes a completed solve run.
type Stats struct {
	RunID        string        `json:"run_id"`
	QuizLength   int           `json:"quiz_length"`
	AttemptCount int           `json:"attempt_count"`
	Seed         string        `json:"seed"`
	SeedScore    int           `json:"seed_score"`
	Generated    int           `json:"generated"`
	Steps        []StepStat    `json:"steps"`
	Surviving    int           `json:"surviving"`
	WallTime     time.Duration `json:"wall_time_ns"`
}

// Infer narrows the possible answer keys to those consistent with every
// attempt. Attempts are ordered by descending score; the highest-scoring one
// seeds candidate generation and the rest reduce the set in turn. The
// returned key strings are sorted.
func Infer(attempts []quiz.Attempt, opts Options) ([]string, Stats, error) {
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	if len(attempts) == 0 {
		return nil, Stats{}, fmt.Errorf("%w: attempt list is empty", quiz.ErrEmptyInput)
	}
	quizLength := attempts[0].Len()
	for _, attempt := range attempts[1:] {
		if attempt.Len() != quizLength {
			return nil, Stats{}, fmt.Errorf("%w: attempt lengths %d and %d", quiz.ErrLengthMismatch, quizLength, attempt.Len())
		}
	}

	ordered := make([]quiz.Attempt, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score() > ordered[j].Score()
	})

	started := time.Now()
	stats := Stats{
		RunID:        uuid.NewString(),
		QuizLength:   quizLength,
		AttemptCount: len(ordered),
		Seed:         ordered[0].String(),
		SeedScore:    ordered[0].Score(),
	}
	observer.OnSolveStart(stats.RunID, quizLength, len(ordered))

	set := quiz.GenerateValidSet(ordered[0])
	stats.Generated = set.Len()
	observer.OnGenerate(stats.Seed, stats.SeedScore, set.Len())

	for i, attempt := range ordered[1:] {
		before := set.Len()
		reduced, err := reduce(set, attempt, opts.Workers)
		if err != nil {
			return nil, Stats{}, err
		}
		set = reduced
		step := StepStat{
			Index:   i + 1,
			Attempt: attempt.String(),
			Score:   attempt.Score(),
			Before:  before,
			After:   set.Len(),
		}
		stats.Steps = append(stats.Steps, step)
		observer.OnReduceStep(step)
	}

	stats.Surviving = set.Len()
	stats.WallTime = time.Since(started)
	observer.OnSolveEnd(stats)
	return set.Strings(), stats, nil
}

// reduce applies one attempt, sequentially or across workers.
func reduce(set quiz.KeySet, attempt quiz.Attempt, workers int) (quiz.KeySet, error) {
	if workers <= 1 {
		return set.Reduce(attempt)
	}
	return reduceConcurrent(set, attempt, workers)
}
