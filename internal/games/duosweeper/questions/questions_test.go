package questions

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

const sampleYAML = `
name: sample
questions:
  - id: a
    text: First?
    options: [one, two, three, four]
    correct: 0
    difficulty: easy
  - text: Second?
    options: [one, two, three, four]
    correct: 3
    difficulty: Hard
`

func TestParseYAML(t *testing.T) {
	qs, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(qs))
	}
	if qs[0].ID != "a" || qs[0].Answer() != "one" {
		t.Errorf("Unexpected first question: %+v", qs[0])
	}
	if qs[1].Difficulty != Hard {
		t.Errorf("Expected difficulty to be normalized to %q, got %q", Hard, qs[1].Difficulty)
	}
	if !qs[1].IsCorrect(3) || qs[1].IsCorrect(0) {
		t.Error("IsCorrect() disagrees with correct index")
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"three options", `
questions:
  - text: Q?
    options: [a, b, c]
    correct: 0
    difficulty: easy
`},
		{"correct out of range", `
questions:
  - text: Q?
    options: [a, b, c, d]
    correct: 4
    difficulty: easy
`},
		{"unknown difficulty", `
questions:
  - text: Q?
    options: [a, b, c, d]
    correct: 1
    difficulty: brutal
`},
		{"empty option", `
questions:
  - text: Q?
    options: [a, "", c, d]
    correct: 1
    difficulty: easy
`},
		{"empty text", `
questions:
  - text: "  "
    options: [a, b, c, d]
    correct: 1
    difficulty: easy
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidQuestion) {
				t.Errorf("Expected ErrInvalidQuestion, got %v", err)
			}
		})
	}
}

func TestValidateLabelKeepsRunes(t *testing.T) {
	q := Question{
		Text:       strings.Repeat("é", 30),
		Options:    [4]string{"a", "", "c", "d"},
		Difficulty: Easy,
	}
	err := q.Validate()
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("Expected ErrInvalidQuestion, got %v", err)
	}
	if !utf8.ValidString(err.Error()) {
		t.Errorf("Error message is not valid UTF-8: %q", err.Error())
	}
	if want := strings.Repeat("é", 24) + "..."; !strings.Contains(err.Error(), want) {
		t.Errorf("Expected label %q in %q", want, err.Error())
	}
}

func TestNewBank(t *testing.T) {
	qs, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	bank, err := NewBank(qs)
	if err != nil {
		t.Fatalf("NewBank() failed: %v", err)
	}
	if bank.Len() != 2 {
		t.Errorf("Expected 2 questions, got %d", bank.Len())
	}
	if bank.At(1).ID != "q002" {
		t.Errorf("Expected generated id q002, got %q", bank.At(1).ID)
	}

	counts := bank.CountByDifficulty()
	if counts[Easy] != 1 || counts[Hard] != 1 || counts[Medium] != 0 {
		t.Errorf("Unexpected counts: %v", counts)
	}

	if _, err := NewBank(nil); !errors.Is(err, ErrEmptyBank) {
		t.Errorf("Expected ErrEmptyBank, got %v", err)
	}

	dup := []Question{qs[0], qs[0]}
	if _, err := NewBank(dup); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("Expected duplicate id error, got %v", err)
	}
}

func TestDefaultBank(t *testing.T) {
	bank, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if bank.Len() < 20 {
		t.Errorf("Expected a reasonably sized default bank, got %d", bank.Len())
	}
	for _, d := range Difficulties() {
		if bank.CountByDifficulty()[d] == 0 {
			t.Errorf("Default bank has no %s questions", d)
		}
	}
}

func TestLoadFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.yaml")
	if err := os.WriteFile(first, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	bank, err := Load(first)
	if err != nil {
		t.Fatalf("Load(file) failed: %v", err)
	}
	if bank.Len() != 2 {
		t.Errorf("Expected 2 questions from file, got %d", bank.Len())
	}

	second := `
questions:
  - id: extra
    text: Third?
    options: [w, x, y, z]
    correct: 2
    difficulty: medium
`
	sub := filepath.Join(dir, "more")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.yml"), []byte(second), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	bank, err = Load(dir)
	if err != nil {
		t.Fatalf("Load(dir) failed: %v", err)
	}
	if bank.Len() != 3 {
		t.Errorf("Expected 3 questions from directory, got %d", bank.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDeckDrawsWithoutRepetition(t *testing.T) {
	bank, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	deck := NewDeck(bank, rand.New(rand.NewSource(5)))

	seen := make(map[string]bool)
	for i := 0; i < bank.Len(); i++ {
		q, err := deck.Draw()
		if err != nil {
			t.Fatalf("Draw() failed: %v", err)
		}
		if seen[q.ID] {
			t.Fatalf("Question %s drawn twice before exhaustion", q.ID)
		}
		seen[q.ID] = true
	}
	if deck.Remaining() != 0 {
		t.Errorf("Expected empty deck, %d remaining", deck.Remaining())
	}

	// Reshuffles once exhausted.
	if _, err := deck.Draw(); err != nil {
		t.Fatalf("Draw() after exhaustion failed: %v", err)
	}
	if deck.Remaining() != bank.Len()-1 {
		t.Errorf("Expected %d remaining after reshuffle, got %d", bank.Len()-1, deck.Remaining())
	}
}

func TestDeckEmptyBank(t *testing.T) {
	deck := NewDeck(nil, rand.New(rand.NewSource(1)))
	if _, err := deck.Draw(); !errors.Is(err, ErrEmptyBank) {
		t.Errorf("Expected ErrEmptyBank, got %v", err)
	}
}
