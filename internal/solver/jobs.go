package solver

import (
	"keyseek/internal/quiz"
)

// chunkResult carries one worker's surviving keys.
type chunkResult struct {
	index int
	kept  []quiz.Key
	err   error
}

// reduceConcurrent filters the candidate set across a worker pool. Chunk
// results are reassembled in order, so the outcome matches the sequential
// reduction exactly.
func reduceConcurrent(set quiz.KeySet, attempt quiz.Attempt, workers int) (quiz.KeySet, error) {
	keys := set.Keys()
	if len(keys) == 0 {
		return quiz.NewKeySet(nil), nil
	}
	if workers > len(keys) {
		workers = len(keys)
	}
	chunkSize := (len(keys) + workers - 1) / workers
	results := make(chan chunkResult, workers)
	chunks := 0
	for start := 0; start < len(keys); start += chunkSize {
		end := start + chunkSize
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[start:end]
		index := chunks
		chunks++
		go func() {
			kept := make([]quiz.Key, 0, len(chunk))
			for _, key := range chunk {
				ok, err := attempt.Check(key)
				if err != nil {
					results <- chunkResult{index: index, err: err}
					return
				}
				if ok {
					kept = append(kept, key)
				}
			}
			results <- chunkResult{index: index, kept: kept}
		}()
	}

	collected := make([][]quiz.Key, chunks)
	var firstErr error
	for i := 0; i < chunks; i++ {
		result := <-results
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		collected[result.index] = result.kept
	}
	if firstErr != nil {
		return quiz.KeySet{}, firstErr
	}
	merged := make([]quiz.Key, 0, len(keys))
	for _, kept := range collected {
		merged = append(merged, kept...)
	}
	return quiz.NewKeySet(merged), nil
}
