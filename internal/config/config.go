// Package config loads the run configuration that names the bank files to
// load and how many questions to draw from each bank per exam.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"examgen/internal/exam"
)

// Config is the parsed run configuration.
type Config struct {
	// QuestionBanks lists the bank files to load, in order.
	QuestionBanks []string `yaml:"question_banks"`

	// Selections holds the (bank, count) pairs in the order they appear
	// in the file.
	Selections SelectionList `yaml:"selections"`
}

// SelectionList decodes the `selections` YAML mapping while preserving
// the order the entries are written in. A plain map would lose it.
type SelectionList []exam.Selection

func (s *SelectionList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("selections must be a mapping of bank name to question count")
	}
	out := make(SelectionList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("selection key: %w", err)
		}
		var count int
		if err := node.Content[i+1].Decode(&count); err != nil {
			return fmt.Errorf("selection %q: %w", name, err)
		}
		if count < 0 {
			return fmt.Errorf("selection %q: count must be non-negative, got %d", name, count)
		}
		out = append(out, exam.Selection{Bank: name, Count: count})
	}
	*s = out
	return nil
}

// Load reads and parses a run configuration file. Unknown fields and
// missing required keys are errors: a typo in a config should stop the
// run, not silently generate an empty exam.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, errors.New("empty config")
		}
		return Config{}, err
	}

	if cfg.QuestionBanks == nil {
		return Config{}, errors.New("question_banks is required")
	}
	if cfg.Selections == nil {
		return Config{}, errors.New("selections is required")
	}
	return cfg, nil
}
