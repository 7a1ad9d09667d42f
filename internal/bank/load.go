package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// bankFile mirrors the on-disk YAML layout of one question bank.
type bankFile struct {
	Name      string           `yaml:"name"`
	Questions []questionRecord `yaml:"questions"`
}

type questionRecord struct {
	ID      string    `yaml:"id"`
	Text    string    `yaml:"text"`
	Type    string    `yaml:"type"`
	Points  *int      `yaml:"points"`
	Choices []string  `yaml:"choices"`
	Correct yaml.Node `yaml:"correct_answers"`
}

// Load reads one bank file and constructs a Bank with one Question per
// record in file order. Any failure to open, parse, or satisfy the
// required-field schema comes back as a *FormatError.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Path: path, Err: fmt.Errorf("parse YAML: %w", err)}
	}
	if err := validateBankDoc(doc); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &FormatError{Path: path, Err: fmt.Errorf("parse YAML: %w", err)}
	}

	b := &Bank{Name: f.Name, Questions: make([]*Question, 0, len(f.Questions))}
	for i, rec := range f.Questions {
		q, err := rec.toQuestion()
		if err != nil {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		b.Questions = append(b.Questions, q)
	}
	return b, nil
}

// toQuestion converts one YAML record into a Question, normalizing the
// correct_answers field (a bare string for multiple_choice, a list for
// multiple_selection) into a slice and applying the default point value.
func (rec questionRecord) toQuestion() (*Question, error) {
	points := 1
	if rec.Points != nil {
		points = *rec.Points
	}

	var correct []string
	switch rec.Correct.Kind {
	case yaml.ScalarNode:
		var s string
		if err := rec.Correct.Decode(&s); err != nil {
			return nil, fmt.Errorf("correct_answers: %w", err)
		}
		correct = []string{s}
	case yaml.SequenceNode:
		if err := rec.Correct.Decode(&correct); err != nil {
			return nil, fmt.Errorf("correct_answers: %w", err)
		}
	default:
		return nil, fmt.Errorf("correct_answers: expected string or list")
	}

	return &Question{
		ID:      rec.ID,
		Text:    rec.Text,
		Points:  points,
		Kind:    Kind(rec.Type),
		Choices: rec.Choices,
		Correct: correct,
	}, nil
}
