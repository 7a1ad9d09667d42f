package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// featureState carries fixtures and outputs across the steps of one
// scenario: a temp dir with bank and config files, the run outcome, and
// the declared correct answers for marker checks.
type featureState struct {
	dir        string
	bankPath   string
	bankName   string
	configPath string
	outDir     string
	correct    map[string]bool
	runErr     error
	stdout     bytes.Buffer
	stderr     bytes.Buffer
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "examgen-feature-")
		if err != nil {
			return ctx, err
		}
		*state = featureState{
			dir:     dir,
			outDir:  filepath.Join(dir, "out"),
			correct: map[string]bool{},
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if state.dir != "" {
			os.RemoveAll(state.dir)
		}
		return ctx, nil
	})

	ctx.Step(`^a question bank "([^"]+)" with (\d+) questions$`, state.aBankWithQuestions)
	ctx.Step(`^a question bank "([^"]+)" with one question whose choices are A, B, C and correct answer B$`, state.aBankWithOneABCQuestion)
	ctx.Step(`^a run configuration selecting (\d+) questions? from "([^"]+)"$`, state.aRunConfiguration)
	ctx.Step(`^I generate (\d+) exam versions?$`, state.iGenerateVersions)
	ctx.Step(`^(\d+) exam documents? (?:are|is) written$`, state.examDocumentsAreWritten)
	ctx.Step(`^each document contains exactly (\d+) question blocks$`, state.eachDocumentContainsQuestionBlocks)
	ctx.Step(`^every correctness marker matches a declared correct answer$`, state.markersMatchDeclaredAnswers)
	ctx.Step(`^each document marks exactly one choice correct$`, state.eachDocumentMarksOneChoice)
	ctx.Step(`^the marked choice text is "([^"]+)"$`, state.markedChoiceTextIs)
}

func (s *featureState) aBankWithQuestions(name string, count int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\nquestions:\n", name)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, `  - text: "Question %d"
    type: multiple_choice
    choices: ["A", "B", "C"]
    correct_answers: "B"
`, i)
	}
	s.correct["B"] = true
	return s.writeBank(name, b.String())
}

func (s *featureState) aBankWithOneABCQuestion(name string) error {
	content := fmt.Sprintf(`name: %s
questions:
  - text: "Pick the letter B"
    type: multiple_choice
    choices: ["A", "B", "C"]
    correct_answers: "B"
`, name)
	s.correct["B"] = true
	return s.writeBank(name, content)
}

func (s *featureState) writeBank(name, content string) error {
	s.bankName = name
	s.bankPath = filepath.Join(s.dir, name+".yaml")
	return os.WriteFile(s.bankPath, []byte(content), 0o644)
}

func (s *featureState) aRunConfiguration(count int, bankName string) error {
	if bankName != s.bankName {
		return fmt.Errorf("scenario selects bank %q but fixture bank is %q", bankName, s.bankName)
	}
	content := fmt.Sprintf("question_banks:\n  - %s\nselections:\n  %s: %d\n", s.bankPath, bankName, count)
	s.configPath = filepath.Join(s.dir, "exam.yaml")
	return os.WriteFile(s.configPath, []byte(content), 0o644)
}

func (s *featureState) iGenerateVersions(versions int) error {
	root := NewRootCmd()
	root.SetOut(&s.stdout)
	root.SetErr(&s.stderr)
	root.SetArgs([]string{
		s.configPath,
		"--versions", strconv.Itoa(versions),
		"--output-dir", s.outDir,
	})
	s.runErr = root.Execute()
	return nil
}

func (s *featureState) examDocumentsAreWritten(count int) error {
	if s.runErr != nil {
		return fmt.Errorf("generation failed: %w", s.runErr)
	}
	docs, err := s.documents()
	if err != nil {
		return err
	}
	if len(docs) != count {
		return fmt.Errorf("found %d documents, want %d", len(docs), count)
	}
	return nil
}

func (s *featureState) eachDocumentContainsQuestionBlocks(count int) error {
	return s.eachDocument(func(name, doc string) error {
		if got := strings.Count(doc, "\\question["); got != count {
			return fmt.Errorf("%s has %d question blocks, want %d", name, got, count)
		}
		return nil
	})
}

func (s *featureState) markersMatchDeclaredAnswers() error {
	return s.eachDocument(func(name, doc string) error {
		for _, line := range strings.Split(doc, "\n") {
			if !strings.HasPrefix(line, "\\correctchoice ") {
				continue
			}
			text := strings.TrimPrefix(line, "\\correctchoice ")
			if !s.correct[text] {
				return fmt.Errorf("%s marks %q correct, not a declared answer", name, text)
			}
		}
		return nil
	})
}

func (s *featureState) eachDocumentMarksOneChoice() error {
	return s.eachDocument(func(name, doc string) error {
		if got := strings.Count(doc, "\\correctchoice "); got != 1 {
			return fmt.Errorf("%s has %d correctness markers, want 1", name, got)
		}
		return nil
	})
}

func (s *featureState) markedChoiceTextIs(want string) error {
	return s.eachDocument(func(name, doc string) error {
		for _, line := range strings.Split(doc, "\n") {
			if strings.HasPrefix(line, "\\correctchoice ") {
				if got := strings.TrimPrefix(line, "\\correctchoice "); got != want {
					return fmt.Errorf("%s marks %q correct, want %q", name, got, want)
				}
			}
		}
		return nil
	})
}

func (s *featureState) documents() (map[string]string, error) {
	entries, err := os.ReadDir(s.outDir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}
	docs := make(map[string]string)
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".tex") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.outDir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs[e.Name()] = string(data)
	}
	return docs, nil
}

func (s *featureState) eachDocument(check func(name, doc string) error) error {
	docs, err := s.documents()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents written")
	}
	for name, doc := range docs {
		if err := check(name, doc); err != nil {
			return err
		}
	}
	return nil
}
