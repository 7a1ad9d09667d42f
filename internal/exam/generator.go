// Package exam assembles complete exam documents from loaded question
// banks, one document per requested version.
package exam

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"examgen/internal/bank"
	"examgen/internal/latex"
)

// Selection names a bank and how many questions to draw from it for one
// exam. Selections are ordered: questions appear in the document grouped
// by selection, in the order selections are listed in the run config.
type Selection struct {
	Bank  string
	Count int
}

// BankNotFoundError indicates a selection referenced a bank name that was
// never loaded.
type BankNotFoundError struct {
	Name string
}

func (e *BankNotFoundError) Error() string {
	return fmt.Sprintf("question bank %q not found", e.Name)
}

// Generator composes exam versions from a set of named question banks.
// Banks are added before generation; the generator is otherwise stateless
// across Generate calls.
type Generator struct {
	banks map[string]*bank.Bank

	// PreamblePath optionally points at a custom preamble template. When
	// the file cannot be read, generation warns on Stderr and falls back
	// to the default preamble.
	PreamblePath string

	// Shuffle controls per-question choice shuffling. Default true.
	Shuffle bool

	// Stderr receives non-fatal diagnostics.
	Stderr io.Writer
}

// NewGenerator returns a Generator with shuffling enabled and diagnostics
// going to os.Stderr.
func NewGenerator() *Generator {
	return &Generator{
		banks:   make(map[string]*bank.Bank),
		Shuffle: true,
		Stderr:  os.Stderr,
	}
}

// AddBank loads a question bank file and registers it under its declared
// name. A later bank with the same name replaces the earlier one.
func (g *Generator) AddBank(path string) error {
	b, err := bank.Load(path)
	if err != nil {
		return err
	}
	g.banks[b.Name] = b
	return nil
}

// Generate produces the full document text for one exam version: the
// preamble, an exam-id stamp, the questions section with one rendered
// block per sampled question, and the closing markers.
//
// Sampling is fresh on every call, so generating the same version number
// twice yields different draws. The one exception is choice order: a
// question drawn into several versions keeps its first shuffled order,
// since the shuffle permutation is cached on the question itself.
func (g *Generator) Generate(selections []Selection, version int) (string, error) {
	var doc strings.Builder
	doc.WriteString(g.preamble(version))

	var questions []*bank.Question
	for _, sel := range selections {
		b, ok := g.banks[sel.Bank]
		if !ok {
			return "", &BankNotFoundError{Name: sel.Bank}
		}
		sampled, err := b.Sample(sel.Count)
		if err != nil {
			return "", err
		}
		questions = append(questions, sampled...)
	}

	doc.WriteString("% exam-id: " + uuid.NewString() + "\n")
	doc.WriteString(latex.BeginQuestions)
	for _, q := range questions {
		doc.WriteString(latex.RenderQuestion(q, g.Shuffle))
		doc.WriteString("\n")
	}
	doc.WriteString(latex.EndQuestions)
	doc.WriteString(latex.EndDocument)
	return doc.String(), nil
}

// preamble resolves the document header for one version: the custom
// template with %%VERSION%% expanded when configured and readable, the
// built-in default otherwise.
func (g *Generator) preamble(version int) string {
	if g.PreamblePath != "" {
		data, err := os.ReadFile(g.PreamblePath)
		if err == nil {
			return latex.ExpandVersion(string(data), version)
		}
		fmt.Fprintf(g.Stderr, "warning: preamble file %s not readable, using default preamble\n", g.PreamblePath)
	}
	return latex.DefaultPreamble(version)
}
