// Package questions provides the multiple-choice question bank used by
// Question tiles: the question type, YAML loading and a non-repeating deck.
package questions

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Difficulty tags a question and selects its reward rule.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the known tags from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid returns true for a known tag.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ErrInvalidQuestion is returned for malformed question definitions.
var ErrInvalidQuestion = errors.New("questions: invalid question")

// Question is a single multiple-choice question.
type Question struct {
	ID         string
	Text       string
	Options    [OptionCount]string
	Correct    int // index into Options
	Difficulty Difficulty
}

// IsCorrect reports whether choice (0-based) is the right answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

// Answer returns the text of the correct option.
func (q Question) Answer() string {
	return q.Options[q.Correct]
}

// Validate checks the question is playable.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: %s: empty text", ErrInvalidQuestion, q.label())
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: %s: option %d is empty", ErrInvalidQuestion, q.label(), i+1)
		}
	}
	if q.Correct < 0 || q.Correct >= OptionCount {
		return fmt.Errorf("%w: %s: correct index %d out of range", ErrInvalidQuestion, q.label(), q.Correct)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("%w: %s: unknown difficulty %q", ErrInvalidQuestion, q.label(), q.Difficulty)
	}
	return nil
}

func (q Question) label() string {
	if q.ID != "" {
		return q.ID
	}
	text := q.Text
	if r := []rune(text); len(r) > 24 {
		text = string(r[:24]) + "..."
	}
	return fmt.Sprintf("%q", text)
}
