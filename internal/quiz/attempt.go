package quiz

import (
	"fmt"
)

// Attempt is one graded run through the quiz: the answers that were given and
// the number of questions they got right. Immutable once constructed.
type Attempt struct {
	answers []Answer
	score   int
}

// NewAttempt validates and constructs an attempt from parsed answers.
func NewAttempt(answers []Answer, score int) (Attempt, error) {
	if len(answers) == 0 {
		return Attempt{}, fmt.Errorf("%w: attempt has no answers", ErrEmptyInput)
	}
	if score < 0 || score > len(answers) {
		return Attempt{}, fmt.Errorf("%w: score %d with quiz length %d", ErrImpossibleScore, score, len(answers))
	}
	copied := make([]Answer, len(answers))
	copy(copied, answers)
	return Attempt{answers: copied, score: score}, nil
}

// ParseAttempt constructs an attempt from a raw answer string and a score.
func ParseAttempt(raw string, score int) (Attempt, error) {
	answers, err := ParseAnswers(raw)
	if err != nil {
		return Attempt{}, err
	}
	return NewAttempt(answers, score)
}

// Len returns the quiz length.
func (a Attempt) Len() int {
	return len(a.answers)
}

// Score returns the number of correct answers the attempt received.
func (a Attempt) Score() int {
	return a.score
}

// Answers returns a copy of the attempt's answer sequence.
func (a Attempt) Answers() []Answer {
	copied := make([]Answer, len(a.answers))
	copy(copied, a.answers)
	return copied
}

// String returns the attempt's answers as a symbol string.
func (a Attempt) String() string {
	return formatAnswers(a.answers)
}

// Check reports whether the key would give this attempt exactly its score.
func (a Attempt) Check(key Key) (bool, error) {
	if len(a.answers) != len(key.answers) {
		return false, fmt.Errorf("%w: attempt length %d, key length %d", ErrLengthMismatch, len(a.answers), len(key.answers))
	}
	matches := 0
	for i, answer := range a.answers {
		if answer == key.answers[i] {
			matches++
		}
	}
	return matches == a.score, nil
}
