package questions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/questions.yaml
var defaultQuestionsYAML []byte

// ErrEmptyBank is returned when a bank has no questions to draw from.
var ErrEmptyBank = errors.New("questions: bank is empty")

// Bank is an immutable set of validated questions.
type Bank struct {
	questions []Question
}

// NewBank validates qs and builds a bank. Questions without an ID are
// numbered in order; duplicate IDs are rejected.
func NewBank(qs []Question) (*Bank, error) {
	if len(qs) == 0 {
		return nil, ErrEmptyBank
	}

	seen := make(map[string]bool, len(qs))
	out := make([]Question, len(qs))
	for i, q := range qs {
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%03d", i+1)
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidQuestion, q.ID)
		}
		seen[q.ID] = true
		out[i] = q
	}
	return &Bank{questions: out}, nil
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	qs, err := ParseYAML(defaultQuestionsYAML)
	if err != nil {
		return nil, fmt.Errorf("questions: embedded bank: %w", err)
	}
	return NewBank(qs)
}

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// At returns the i-th question.
func (b *Bank) At(i int) Question { return b.questions[i] }

// All returns a copy of every question in bank order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// CountByDifficulty returns how many questions carry each tag.
func (b *Bank) CountByDifficulty() map[Difficulty]int {
	counts := make(map[Difficulty]int, 3)
	for _, q := range b.questions {
		counts[q.Difficulty]++
	}
	return counts
}

// Load reads a bank from a YAML file or from every YAML file under a
// directory. Directory contents are merged in path order.
func Load(path string) (*Bank, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}
	if !info.IsDir() {
		qs, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		return NewBank(qs)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("questions: walking directory %s: %w", path, err)
	}
	sort.Strings(files)

	var all []Question
	for _, f := range files {
		qs, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, qs...)
	}
	return NewBank(all)
}

func loadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questions: reading file %s: %w", path, err)
	}
	qs, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("questions: parsing file %s: %w", path, err)
	}
	return qs, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
