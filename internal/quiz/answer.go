package quiz

import (
	"errors"
	"fmt"
	"unicode"
)

// Answer is one selectable choice on a multiple-choice quiz.
type Answer byte

const (
	// AnswerA through AnswerD are the four selectable choices.
	AnswerA Answer = iota
	AnswerB
	AnswerC
	AnswerD
	// AnswerNone marks a position with no valid answer. It is accepted in
	// attempt input but never appears in a generated key.
	AnswerNone
)

// Alphabet lists the valid answer values in symbol order.
var Alphabet = [4]Answer{AnswerA, AnswerB, AnswerC, AnswerD}

// ErrInvalidSymbol indicates a character outside the answer alphabet.
var ErrInvalidSymbol = errors.New("invalid answer symbol")

// ErrImpossibleScore indicates a score outside [0, quiz length].
var ErrImpossibleScore = errors.New("impossible score")

// ErrLengthMismatch indicates two sequences that should share a length do not.
var ErrLengthMismatch = errors.New("answer length mismatch")

// ErrEmptyInput indicates no attempts were supplied.
var ErrEmptyInput = errors.New("no attempts supplied")

// ParseAnswer maps a symbol to its Answer value. Lowercase input is accepted.
func ParseAnswer(symbol rune) (Answer, error) {
	switch unicode.ToUpper(symbol) {
	case 'A':
		return AnswerA, nil
	case 'B':
		return AnswerB, nil
	case 'C':
		return AnswerC, nil
	case 'D':
		return AnswerD, nil
	case 'X':
		return AnswerNone, nil
	}
	return AnswerNone, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
}

// String returns the symbol for an answer.
func (a Answer) String() string {
	switch a {
	case AnswerA:
		return "A"
	case AnswerB:
		return "B"
	case AnswerC:
		return "C"
	case AnswerD:
		return "D"
	}
	return "X"
}

// ParseAnswers converts a raw answer string into a sequence of answers.
func ParseAnswers(raw string) ([]Answer, error) {
	answers := make([]Answer, 0, len(raw))
	for _, symbol := range raw {
		answer, err := ParseAnswer(symbol)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// formatAnswers concatenates answer symbols in position order.
func formatAnswers(answers []Answer) string {
	buf := make([]byte, len(answers))
	for i, answer := range answers {
		buf[i] = answer.String()[0]
	}
	return string(buf)
}
