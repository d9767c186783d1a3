package quiz

import "iter"

// GenerateValidSet produces every key that could have given the seed attempt
// exactly its score: choose k = length - score positions of the seed and
// overwrite each with a different answer value. Replacements always differ
// from the seed's own answer at the overwritten position, so every candidate
// disagrees with the seed in exactly k positions. Candidates that would keep
// a no-answer sentinel from the seed are discarded.
//
// The search space is C(n,k) * 3^k candidates rather than the full 4^n, so
// the seed should be the highest-scoring attempt available.
func GenerateValidSet(seed Attempt) KeySet {
	n := seed.Len()
	k := n - seed.Score()
	keys := make([]Key, 0)
	for positions := range positionSubsets(n, k) {
		for candidate := range overwrittenCandidates(seed.answers, positions) {
			if containsNone(candidate) {
				continue
			}
			copied := make([]Answer, n)
			copy(copied, candidate)
			keys = append(keys, Key{answers: copied})
		}
	}
	return NewKeySet(keys)
}

// positionSubsets yields every size-k subset of {0..n-1} in lexicographic
// order. The yielded slice is reused between iterations.
func positionSubsets(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		subset := make([]int, k)
		for i := range subset {
			subset[i] = i
		}
		for {
			if !yield(subset) {
				return
			}
			i := k - 1
			for i >= 0 && subset[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			subset[i]++
			for j := i + 1; j < k; j++ {
				subset[j] = subset[j-1] + 1
			}
		}
	}
}

// overwrittenCandidates yields every candidate obtained by overwriting the
// given seed positions with answer values other than the seed's own. The
// yielded slice is reused between iterations.
func overwrittenCandidates(seed []Answer, positions []int) iter.Seq[[]Answer] {
	return func(yield func([]Answer) bool) {
		candidate := make([]Answer, len(seed))
		copy(candidate, seed)
		if len(positions) == 0 {
			yield(candidate)
			return
		}
		choices := make([][]Answer, len(positions))
		for i, position := range positions {
			options := make([]Answer, 0, len(Alphabet)-1)
			for _, answer := range Alphabet {
				if answer != seed[position] {
					options = append(options, answer)
				}
			}
			choices[i] = options
		}
		indices := make([]int, len(positions))
		for {
			for i, position := range positions {
				candidate[position] = choices[i][indices[i]]
			}
			if !yield(candidate) {
				return
			}
			digit := len(indices) - 1
			for digit >= 0 {
				indices[digit]++
				if indices[digit] < len(choices[digit]) {
					break
				}
				indices[digit] = 0
				digit--
			}
			if digit < 0 {
				return
			}
		}
	}
}
