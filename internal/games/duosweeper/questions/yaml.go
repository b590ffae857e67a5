package questions

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLBank is the on-disk layout of a question file.
type YAMLBank struct {
	Name      string         `yaml:"name,omitempty"`
	Questions []YAMLQuestion `yaml:"questions"`
}

// YAMLQuestion is one entry of a question file. Correct is 0-based.
type YAMLQuestion struct {
	ID         string   `yaml:"id,omitempty"`
	Text       string   `yaml:"text"`
	Options    []string `yaml:"options"`
	Correct    int      `yaml:"correct"`
	Difficulty string   `yaml:"difficulty"`
}

// ParseYAML parses and validates a question file.
func ParseYAML(data []byte) ([]Question, error) {
	var yb YAMLBank
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out := make([]Question, 0, len(yb.Questions))
	for i, yq := range yb.Questions {
		q, err := yq.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func (yq YAMLQuestion) toQuestion() (Question, error) {
	q := Question{
		ID:         yq.ID,
		Text:       strings.TrimSpace(yq.Text),
		Correct:    yq.Correct,
		Difficulty: Difficulty(strings.ToLower(strings.TrimSpace(yq.Difficulty))),
	}
	if len(yq.Options) != OptionCount {
		return Question{}, fmt.Errorf("%w: %s: want %d options, got %d",
			ErrInvalidQuestion, q.label(), OptionCount, len(yq.Options))
	}
	copy(q.Options[:], yq.Options)
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
