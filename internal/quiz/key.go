package quiz

import "fmt"

// Key is one hypothesis for the true answer key. It never contains
// AnswerNone. Immutable once constructed.
type Key struct {
	answers []Answer
}

// NewKey validates and constructs a key from parsed answers.
func NewKey(answers []Answer) (Key, error) {
	for i, answer := range answers {
		if answer == AnswerNone {
			return Key{}, fmt.Errorf("%w: position %d has no valid answer", ErrInvalidSymbol, i)
		}
	}
	copied := make([]Answer, len(answers))
	copy(copied, answers)
	return Key{answers: copied}, nil
}

// ParseKey constructs a key from a raw answer string.
func ParseKey(raw string) (Key, error) {
	answers, err := ParseAnswers(raw)
	if err != nil {
		return Key{}, err
	}
	return NewKey(answers)
}

// Len returns the key length.
func (k Key) Len() int {
	return len(k.answers)
}

// String returns the key as a symbol string.
func (k Key) String() string {
	return formatAnswers(k.answers)
}

// containsNone reports whether a raw candidate holds the sentinel anywhere.
func containsNone(answers []Answer) bool {
	for _, answer := range answers {
		if answer == AnswerNone {
			return true
		}
	}
	return false
}
